package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"promisync/internal/domain"
	"promisync/internal/service"
)

// Syncer starts sync sessions; the scheduler only triggers them.
type Syncer interface {
	Suppliers() []string
	StartSync(ctx context.Context, supplierCode string) (*domain.SyncSession, error)
}

// Scheduler kicks off a sync for every configured supplier on a fixed
// interval. A supplier with a session already running is skipped, not
// an error.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, supplier := range s.syncer.Suppliers() {
		session, err := s.syncer.StartSync(ctx, supplier)
		if err != nil {
			if errors.Is(err, service.ErrSyncAlreadyRunning) {
				s.logger.Info("sync already running, skipping", "supplier", supplier)
				continue
			}
			s.logger.Error("scheduled sync failed to start", "supplier", supplier, "error", err)
			continue
		}
		s.logger.Info("scheduled sync started", "supplier", supplier, "session_id", session.ID)
	}
}
