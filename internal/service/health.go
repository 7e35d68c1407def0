package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"promisync/internal/domain"
)

const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
)

// HealthChecker derives an overall pipeline signal from the most recent
// session per known supplier, based on recency and failure ratio.
type HealthChecker struct {
	sessions        SessionStore
	maxSessionAge   time.Duration
	maxFailureRatio float64
	logger          *slog.Logger
}

func NewHealthChecker(sessions SessionStore, maxSessionAge time.Duration, maxFailureRatio float64, logger *slog.Logger) *HealthChecker {
	return &HealthChecker{
		sessions:        sessions,
		maxSessionAge:   maxSessionAge,
		maxFailureRatio: maxFailureRatio,
		logger:          logger.With("component", "health"),
	}
}

func (h *HealthChecker) PipelineHealth(ctx context.Context) (*domain.PipelineHealth, error) {
	latest, err := h.sessions.LatestPerSupplier(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest sessions: %w", err)
	}

	health := &domain.PipelineHealth{
		Status:    HealthHealthy,
		CheckedAt: time.Now().UTC(),
	}

	for i := range latest {
		session := latest[i]
		supplier := h.assess(&session)
		if !supplier.Healthy {
			health.Status = HealthDegraded
		}
		health.Suppliers = append(health.Suppliers, supplier)
	}

	return health, nil
}

func (h *HealthChecker) assess(session *domain.SyncSession) domain.SupplierHealth {
	result := domain.SupplierHealth{
		SupplierCode: session.SupplierCode,
		Healthy:      true,
		LastSession:  session,
	}

	switch session.State {
	case domain.SessionRunning:
		return result
	case domain.SessionFailed:
		result.Healthy = false
		result.Reason = "last sync failed"
		return result
	}

	if session.EndedAt != nil && time.Since(*session.EndedAt) > h.maxSessionAge {
		result.Healthy = false
		result.Reason = fmt.Sprintf("last sync older than %s", h.maxSessionAge)
		return result
	}

	if session.Totals.Scanned > 0 {
		ratio := float64(session.Totals.Failed) / float64(session.Totals.Scanned)
		if ratio > h.maxFailureRatio {
			result.Healthy = false
			result.Reason = fmt.Sprintf("failure ratio %.2f above threshold %.2f", ratio, h.maxFailureRatio)
		}
	}

	return result
}
