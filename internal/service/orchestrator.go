package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"promisync/internal/domain"
	"promisync/internal/metrics"
)

type OrchestratorConfig struct {
	MaxJobAttempts    int
	DrainPollInterval time.Duration
}

// Orchestrator drives one sync session per supplier: fetch manifest,
// diff, enqueue jobs, wait for the queue to drain, finalize. The
// orchestrator itself is single-threaded per session; only the ledger
// and the queue are shared with the workers.
type Orchestrator struct {
	sources    map[string]SupplierSource
	products   ProductStore
	categories CategoryStore
	sessions   SessionStore
	queue      JobQueue
	cfg        OrchestratorConfig
	logger     *slog.Logger

	mu    sync.Mutex
	stops map[string]chan struct{} // supplier code -> stop signal of the running session
}

func NewOrchestrator(
	sources map[string]SupplierSource,
	products ProductStore,
	categories CategoryStore,
	sessions SessionStore,
	queue JobQueue,
	cfg OrchestratorConfig,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.MaxJobAttempts <= 0 {
		cfg.MaxJobAttempts = 3
	}
	if cfg.DrainPollInterval <= 0 {
		cfg.DrainPollInterval = time.Second
	}
	return &Orchestrator{
		sources:    sources,
		products:   products,
		categories: categories,
		sessions:   sessions,
		queue:      queue,
		cfg:        cfg,
		logger:     logger.With("component", "orchestrator"),
		stops:      make(map[string]chan struct{}),
	}
}

// Suppliers lists the configured supplier codes.
func (o *Orchestrator) Suppliers() []string {
	codes := make([]string, 0, len(o.sources))
	for code := range o.sources {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// StartSync creates a new Running session for the supplier and launches
// it in the background. A start request while a session is running is
// rejected, not queued.
func (o *Orchestrator) StartSync(ctx context.Context, supplierCode string) (*domain.SyncSession, error) {
	source, ok := o.sources[supplierCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSupplier, supplierCode)
	}

	active, err := o.sessions.ActiveForSupplier(ctx, supplierCode)
	if err != nil {
		return nil, fmt.Errorf("check active session: %w", err)
	}
	if active != nil {
		return nil, ErrSyncAlreadyRunning
	}

	session := &domain.SyncSession{
		ID:           uuid.NewString(),
		SupplierCode: supplierCode,
		State:        domain.SessionRunning,
		StartedAt:    time.Now().UTC(),
	}
	if err := o.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	stop := make(chan struct{})
	o.mu.Lock()
	o.stops[supplierCode] = stop
	o.mu.Unlock()

	go o.runSession(source, session, stop)

	return session, nil
}

// StopSync requests cancellation of the supplier's running session.
// In-flight jobs run to completion; no further work is enqueued.
func (o *Orchestrator) StopSync(_ context.Context, supplierCode string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	stop, ok := o.stops[supplierCode]
	if !ok {
		return ErrNoActiveSession
	}
	select {
	case <-stop:
	default:
		close(stop)
	}
	return nil
}

// TestConnection checks reachability of the supplier's manifest source.
func (o *Orchestrator) TestConnection(ctx context.Context, supplierCode string) error {
	source, ok := o.sources[supplierCode]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSupplier, supplierCode)
	}
	return source.TestConnection(ctx)
}

// ImportCategories fetches the supplier's category tree and upserts it.
func (o *Orchestrator) ImportCategories(ctx context.Context, supplierCode string) (int, error) {
	source, ok := o.sources[supplierCode]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSupplier, supplierCode)
	}

	categories, lineErrs, err := source.FetchCategories(ctx)
	if err != nil {
		return 0, err
	}
	for _, lineErr := range lineErrs {
		o.logger.Warn("skipping malformed category line", "supplier", supplierCode, "error", lineErr)
	}

	if err := o.categories.UpsertBatch(ctx, categories); err != nil {
		return 0, fmt.Errorf("upsert categories: %w", err)
	}
	return len(categories), nil
}

// ExportProducts returns all of the supplier's synced products.
func (o *Orchestrator) ExportProducts(ctx context.Context, supplierCode string) ([]domain.Product, error) {
	if _, ok := o.sources[supplierCode]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSupplier, supplierCode)
	}
	return o.products.ListBySupplier(ctx, supplierCode)
}

// runSession owns the session lifecycle. It deliberately runs on a
// background context: the session outlives the start request, and
// cancellation must not interrupt in-flight calls.
func (o *Orchestrator) runSession(source SupplierSource, session *domain.SyncSession, stop chan struct{}) {
	ctx := context.Background()
	logger := o.logger.With("session_id", session.ID, "supplier", session.SupplierCode)

	defer func() {
		o.mu.Lock()
		delete(o.stops, session.SupplierCode)
		o.mu.Unlock()
	}()

	logger.Info("sync session started")

	entries, lineErrs, err := source.FetchManifest(ctx)
	if err != nil {
		logger.Error("manifest fetch failed", "error", err)
		o.appendError(ctx, session.ID, "", "fetch", err)
		o.finish(ctx, session.ID, domain.SessionFailed, logger)
		return
	}
	for _, lineErr := range lineErrs {
		o.appendError(ctx, session.ID, "", "parse", lineErr)
	}

	stored, err := o.products.HashesByKey(ctx, session.SupplierCode)
	if err != nil {
		logger.Error("loading stored hashes failed", "error", err)
		o.appendError(ctx, session.ID, "", "store", err)
		o.finish(ctx, session.ID, domain.SessionFailed, logger)
		return
	}

	c := Classify(entries, stored)
	logger.Info("manifest diffed",
		"scanned", c.Scanned(),
		"new", len(c.New),
		"changed", len(c.Changed),
		"unchanged", len(c.Unchanged),
		"removed", len(c.Removed),
	)

	if err := o.sessions.AddTotals(ctx, session.ID, domain.SessionTotals{
		Scanned:   c.Scanned(),
		Unchanged: len(c.Unchanged),
	}); err != nil {
		logger.Error("recording diff totals failed", "error", err)
	}

	o.enqueueJobs(ctx, session, c, stop, logger)

	state := o.drain(ctx, session.ID, stop, logger)
	o.finish(ctx, session.ID, state, logger)
}

func (o *Orchestrator) enqueueJobs(ctx context.Context, session *domain.SyncSession, c domain.Classification, stop <-chan struct{}, logger *slog.Logger) {
	jobs := make([]*domain.SyncJob, 0, len(c.Removed)+len(c.Changed)+len(c.New))

	// removals first so stale documents leave the sinks before new
	// fetch traffic starts
	for _, key := range c.Removed {
		jobs = append(jobs, o.newJob(session, domain.ManifestEntry{ExternalKey: key}, domain.JobActionRemove, domain.JobClassRemoved, domain.PriorityHigh))
	}
	for _, entry := range c.Changed {
		jobs = append(jobs, o.newJob(session, entry, domain.JobActionUpsert, domain.JobClassChanged, domain.PriorityNormal))
	}
	for _, entry := range c.New {
		jobs = append(jobs, o.newJob(session, entry, domain.JobActionUpsert, domain.JobClassNew, domain.PriorityNormal))
	}

	for _, job := range jobs {
		select {
		case <-stop:
			logger.Info("stop requested, enqueuing halted")
			return
		default:
		}

		if err := o.queue.Enqueue(ctx, job); err != nil {
			logger.Error("enqueue failed", "external_key", job.ExternalKey, "error", err)
			o.appendError(ctx, session.ID, job.ExternalKey, "queue", err)
			if err := o.sessions.AddTotals(ctx, session.ID, domain.SessionTotals{Failed: 1}); err != nil {
				logger.Error("recording enqueue failure failed", "error", err)
			}
		}
	}

	logger.Info("jobs enqueued", "count", len(jobs))
}

func (o *Orchestrator) newJob(session *domain.SyncSession, entry domain.ManifestEntry, action, class string, priority int) *domain.SyncJob {
	return &domain.SyncJob{
		SessionID:      session.ID,
		SupplierCode:   session.SupplierCode,
		ExternalKey:    entry.ExternalKey,
		SourceURL:      entry.SourceURL,
		Action:         action,
		Classification: class,
		ContentHash:    entry.ContentHash,
		Priority:       priority,
		MaxAttempts:    o.cfg.MaxJobAttempts,
		Status:         domain.JobStatusQueued,
		RunAt:          time.Now().UTC(),
	}
}

// drain waits until no job of the session is queued or in flight. A
// stop request drops the queued remainder and lets in-flight jobs
// finish, ending the session as Cancelled. That holds even when the
// stop landed before any job was enqueued and the queue is empty.
func (o *Orchestrator) drain(ctx context.Context, sessionID string, stop <-chan struct{}, logger *slog.Logger) string {
	state := domain.SessionCompleted

	ticker := time.NewTicker(o.cfg.DrainPollInterval)
	defer ticker.Stop()

	for {
		pending, err := o.queue.PendingCount(ctx, sessionID)
		if err != nil {
			logger.Error("polling queue failed", "error", err)
		} else if pending == 0 {
			select {
			case <-stop:
				state = domain.SessionCancelled
			default:
			}
			return state
		}

		select {
		case <-stop:
			stop = nil
			state = domain.SessionCancelled
			dropped, err := o.queue.DeleteQueued(ctx, sessionID)
			if err != nil {
				logger.Error("dropping queued jobs failed", "error", err)
			} else {
				logger.Info("sync cancelled, queued jobs dropped", "dropped", dropped)
			}
		case <-ticker.C:
		}
	}
}

func (o *Orchestrator) finish(ctx context.Context, sessionID, state string, logger *slog.Logger) {
	if err := o.sessions.Finish(ctx, sessionID, state); err != nil {
		logger.Error("finalizing session failed", "state", state, "error", err)
		return
	}
	metrics.SessionsFinished.WithLabelValues(state).Inc()

	final, err := o.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Error("reloading finished session failed", "error", err)
		return
	}

	logger.Info("sync session finished",
		"state", state,
		"scanned", final.Totals.Scanned,
		"added", final.Totals.Added,
		"updated", final.Totals.Updated,
		"unchanged", final.Totals.Unchanged,
		"removed", final.Totals.Removed,
		"failed", final.Totals.Failed,
		"duration", time.Since(final.StartedAt),
	)
}

func (o *Orchestrator) appendError(ctx context.Context, sessionID, externalKey, stage string, err error) {
	appendErr := o.sessions.AppendError(ctx, &domain.SessionError{
		SessionID:   sessionID,
		ExternalKey: externalKey,
		Stage:       stage,
		Message:     err.Error(),
		OccurredAt:  time.Now().UTC(),
	})
	if appendErr != nil {
		o.logger.Error("failed to record session error", "error", appendErr)
	}
}
