package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"promisync/internal/domain"
)

// Verifier re-reads a finished session's affected keys from the
// system-of-record and both sinks and reports divergence. It never
// repairs anything; repair is a new sync.
type Verifier struct {
	products ProductStore
	sessions SessionStore
	queue    JobQueue
	search   DocumentSink
	rag      DocumentSink
	logger   *slog.Logger
}

func NewVerifier(
	products ProductStore,
	sessions SessionStore,
	queue JobQueue,
	search DocumentSink,
	rag DocumentSink,
	logger *slog.Logger,
) *Verifier {
	return &Verifier{
		products: products,
		sessions: sessions,
		queue:    queue,
		search:   search,
		rag:      rag,
		logger:   logger.With("component", "verifier"),
	}
}

func (v *Verifier) VerifySession(ctx context.Context, sessionID string) (*domain.VerificationReport, error) {
	session, err := v.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	keys, err := v.queue.KeysForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load affected keys: %w", err)
	}

	report := &domain.VerificationReport{
		SessionID: sessionID,
		CheckedAt: time.Now().UTC(),
	}

	for _, key := range keys {
		product, err := v.products.GetByExternalKey(ctx, session.SupplierCode, key)
		if err != nil {
			return nil, fmt.Errorf("read system-of-record for %s: %w", key, err)
		}
		report.KeysChecked++

		for _, sink := range []DocumentSink{v.search, v.rag} {
			if sink == nil {
				continue
			}
			divergence, err := v.checkSink(ctx, sink, session.SupplierCode, key, product)
			if err != nil {
				return nil, err
			}
			if divergence != nil {
				report.Divergences = append(report.Divergences, *divergence)
			}
		}
	}

	report.Consistent = len(report.Divergences) == 0
	v.logger.Info("session verified",
		"session_id", sessionID,
		"keys", report.KeysChecked,
		"divergences", len(report.Divergences),
	)
	return report, nil
}

func (v *Verifier) checkSink(ctx context.Context, sink DocumentSink, supplierCode, key string, product *domain.Product) (*domain.SinkDivergence, error) {
	found, sinkHash, err := sink.Exists(ctx, supplierCode, key)
	if err != nil {
		return nil, fmt.Errorf("read %s for %s: %w", sink.Name(), key, err)
	}

	switch {
	case product != nil && !found:
		return &domain.SinkDivergence{
			ExternalKey: key,
			Sink:        sink.Name(),
			Kind:        domain.DivergenceMissing,
			StoreHash:   product.PromidataHash,
		}, nil
	case product == nil && found:
		return &domain.SinkDivergence{
			ExternalKey: key,
			Sink:        sink.Name(),
			Kind:        domain.DivergenceOrphaned,
			SinkHash:    sinkHash,
		}, nil
	case product != nil && sinkHash != "" && sinkHash != product.PromidataHash:
		return &domain.SinkDivergence{
			ExternalKey: key,
			Sink:        sink.Name(),
			Kind:        domain.DivergenceHashMismatch,
			StoreHash:   product.PromidataHash,
			SinkHash:    sinkHash,
		}, nil
	}
	return nil, nil
}
