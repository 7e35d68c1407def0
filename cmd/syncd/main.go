package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"promisync/internal/api"
	"promisync/internal/config"
	"promisync/internal/httpclient"
	"promisync/internal/publisher"
	"promisync/internal/scheduler"
	"promisync/internal/service"
	"promisync/internal/sink"
	"promisync/internal/source/promidata"
	"promisync/internal/storage/postgres"
	"promisync/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	productStore := postgres.NewProductStore(db)
	categoryStore := postgres.NewCategoryStore(db)
	sessionStore := postgres.NewSessionStore(db)
	jobQueue := postgres.NewJobQueue(db)
	txManager := postgres.NewTransactionManager(db)

	// Sessions left running by a previous crash can never finish.
	ctx := context.Background()
	if orphaned, err := sessionStore.FailOrphaned(ctx); err != nil {
		logger.Error("failed to fail orphaned sessions", "error", err)
		os.Exit(1)
	} else if orphaned > 0 {
		logger.Warn("failed orphaned sessions from previous run", "count", orphaned)
	}

	// Supplier sources share one rate-limited client against Promidata.
	promiClient := httpclient.New(
		&http.Client{Timeout: cfg.Promidata.Timeout},
		httpclient.RetryConfig{
			MaxAttempts: cfg.Promidata.Retry.MaxAttempts,
			BaseDelay:   cfg.Promidata.Retry.InitialBackoff,
			MaxDelay:    cfg.Promidata.Retry.MaxBackoff,
		},
		rate.NewLimiter(rate.Limit(cfg.Promidata.RequestsPerSecond), 1),
		logger,
	)

	sources := make(map[string]service.SupplierSource, len(cfg.Promidata.Suppliers))
	for _, code := range cfg.Promidata.Suppliers {
		sources[code] = promidata.New(promidata.Config{
			BaseURL:      cfg.Promidata.BaseURL,
			SupplierCode: code,
		}, promiClient, logger)
	}
	if len(sources) == 0 {
		logger.Error("no suppliers configured")
		os.Exit(1)
	}

	// Sinks
	sinkClient := httpclient.New(
		&http.Client{Timeout: cfg.Sinks.Timeout},
		httpclient.RetryConfig{
			MaxAttempts: cfg.Sinks.Retry.MaxAttempts,
			BaseDelay:   cfg.Sinks.Retry.InitialBackoff,
			MaxDelay:    cfg.Sinks.Retry.MaxBackoff,
		},
		nil,
		logger,
	)
	searchSink := sink.New("search_index", cfg.Sinks.SearchIndexURL, sinkClient, logger)
	ragSink := sink.New("rag_store", cfg.Sinks.RAGStoreURL, sinkClient, logger)

	// Services
	fanout := service.NewFanout(productStore, txManager, sessionStore, searchSink, ragSink, rabbitMQ, logger)
	processor := service.NewProcessor(sources, fanout, sessionStore, logger)
	orchestrator := service.NewOrchestrator(
		sources,
		productStore,
		categoryStore,
		sessionStore,
		jobQueue,
		service.OrchestratorConfig{MaxJobAttempts: cfg.Sync.MaxJobAttempts},
		logger,
	)
	verifier := service.NewVerifier(productStore, sessionStore, jobQueue, searchSink, ragSink, logger)
	healthChecker := service.NewHealthChecker(sessionStore, cfg.Sync.MaxSessionAge, cfg.Sync.MaxFailureRatio, logger)

	pool := worker.NewPool(jobQueue, processor, sessionStore, worker.Config{
		Size:  cfg.Sync.Workers,
		Lease: cfg.Sync.JobLease,
	}, logger)

	handler := api.NewHandler(orchestrator, verifier, healthChecker, sessionStore, logger)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(handler, logger),
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		pool.Run(runCtx)
	}()

	if cfg.Sync.AutoSync {
		sched := scheduler.NewScheduler(orchestrator, cfg.Sync.Interval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sched.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting catalog sync service",
		"addr", cfg.Server.Addr,
		"suppliers", cfg.Promidata.Suppliers,
		"workers", cfg.Sync.Workers,
		"auto_sync", cfg.Sync.AutoSync,
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	// Let in-flight jobs finish their current attempt.
	waitCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitCh)
	}()
	select {
	case <-waitCh:
	case <-time.After(cfg.Server.ShutdownTimeout):
		logger.Warn("workers did not stop in time")
	}

	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
