package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"promisync/internal/domain"
	"promisync/internal/metrics"
	"promisync/internal/service"
)

// Queue is the part of the job queue the pool consumes.
type Queue interface {
	DequeueNext(ctx context.Context, lease time.Duration) (*domain.SyncJob, error)
	Ack(ctx context.Context, jobID int64) error
	Nack(ctx context.Context, jobID int64, retryable bool, reason string) error
	ReleaseExpired(ctx context.Context) (int, []domain.SyncJob, error)
}

// Processor executes one job.
type Processor interface {
	Process(ctx context.Context, job *domain.SyncJob) error
}

// Ledger records terminal job failures against the owning session.
type Ledger interface {
	AddTotals(ctx context.Context, id string, delta domain.SessionTotals) error
	AppendError(ctx context.Context, e *domain.SessionError) error
}

type Config struct {
	Size         int
	Lease        time.Duration
	PollInterval time.Duration
	ReapInterval time.Duration
}

// Pool runs a fixed number of workers over the job queue plus one
// reaper that returns expired leases. Each worker owns the job it
// dequeued until it acks or nacks it.
type Pool struct {
	queue     Queue
	processor Processor
	ledger    Ledger
	cfg       Config
	logger    *slog.Logger
}

func NewPool(queue Queue, processor Processor, ledger Ledger, cfg Config, logger *slog.Logger) *Pool {
	if cfg.Size <= 0 {
		cfg.Size = 4
	}
	if cfg.Lease <= 0 {
		cfg.Lease = 2 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = 30 * time.Second
	}
	return &Pool{
		queue:     queue,
		processor: processor,
		ledger:    ledger,
		cfg:       cfg,
		logger:    logger.With("component", "worker"),
	}
}

// Run blocks until ctx is done and all workers have returned.
func (p *Pool) Run(ctx context.Context) {
	p.logger.Info("worker pool started", "size", p.cfg.Size, "lease", p.cfg.Lease)

	var wg sync.WaitGroup
	for i := 0; i < p.cfg.Size; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.workerLoop(ctx, id)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		p.reaperLoop(ctx)
	}()

	wg.Wait()
	p.logger.Info("worker pool stopped")
}

func (p *Pool) workerLoop(ctx context.Context, id int) {
	logger := p.logger.With("worker", id)

	for {
		if ctx.Err() != nil {
			return
		}

		job, err := p.queue.DequeueNext(ctx, p.cfg.Lease)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("dequeue failed", "error", err)
			p.sleep(ctx, p.cfg.PollInterval)
			continue
		}
		if job == nil {
			p.sleep(ctx, p.cfg.PollInterval)
			continue
		}

		p.handle(ctx, logger, job)
	}
}

func (p *Pool) handle(ctx context.Context, logger *slog.Logger, job *domain.SyncJob) {
	logger = logger.With(
		"job_id", job.ID,
		"external_key", job.ExternalKey,
		"action", job.Action,
		"attempt", job.Attempt,
	)

	start := time.Now()
	err := p.processor.Process(ctx, job)
	metrics.JobDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		if ackErr := p.queue.Ack(ctx, job.ID); ackErr != nil {
			logger.Error("ack failed", "error", ackErr)
			return
		}
		metrics.JobsProcessed.WithLabelValues("succeeded").Inc()
		logger.Debug("job succeeded")
		return
	}

	retryable := !service.IsPermanent(err)
	terminal := !retryable || job.Attempt >= job.MaxAttempts

	if nackErr := p.queue.Nack(ctx, job.ID, retryable, err.Error()); nackErr != nil {
		logger.Error("nack failed", "error", nackErr)
	}

	if terminal {
		metrics.JobsProcessed.WithLabelValues("dead_lettered").Inc()
		logger.Warn("job dead-lettered", "error", err)
		p.recordFailure(ctx, logger, job, err)
		return
	}

	metrics.JobsProcessed.WithLabelValues("retried").Inc()
	logger.Warn("job failed, will retry", "error", err)
}

// recordFailure reports a dead-lettered job to the session ledger as a
// failure, not a crash.
func (p *Pool) recordFailure(ctx context.Context, logger *slog.Logger, job *domain.SyncJob, jobErr error) {
	if err := p.ledger.AddTotals(ctx, job.SessionID, domain.SessionTotals{Failed: 1}); err != nil {
		logger.Error("recording job failure total failed", "error", err)
	}
	if err := p.ledger.AppendError(ctx, &domain.SessionError{
		SessionID:   job.SessionID,
		ExternalKey: job.ExternalKey,
		Stage:       "job",
		Message:     jobErr.Error(),
		OccurredAt:  time.Now().UTC(),
	}); err != nil {
		logger.Error("recording job failure detail failed", "error", err)
	}
}

func (p *Pool) reaperLoop(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, deadLettered, err := p.queue.ReleaseExpired(ctx)
			if err != nil {
				p.logger.Error("releasing expired leases failed", "error", err)
				continue
			}
			if released > 0 {
				metrics.LeasesExpired.Add(float64(released))
				p.logger.Warn("expired leases returned to queue", "count", released)
			}

			// A job whose last attempt died with its lease is as dead
			// as an explicit terminal nack and must reach the ledger.
			for i := range deadLettered {
				job := &deadLettered[i]
				metrics.JobsProcessed.WithLabelValues("dead_lettered").Inc()
				logger := p.logger.With("job_id", job.ID, "external_key", job.ExternalKey)
				logger.Warn("job dead-lettered after lease expiry")
				p.recordFailure(ctx, logger, job, errors.New("worker lease expired"))
			}
		}
	}
}

func (p *Pool) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
