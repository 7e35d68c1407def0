package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"promisync/internal/domain"
)

// Event bus actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Fanout propagates one canonical write to the system-of-record and the
// secondary sinks. The system-of-record upsert must succeed first; sink
// writes are independent of each other and their failures are recorded
// against the session instead of failing the job, since the secondary
// sinks can be reconciled later through verification and re-sync.
type Fanout struct {
	products  ProductStore
	tx        TransactionManager
	sessions  SessionStore
	search    DocumentSink
	rag       DocumentSink
	publisher Publisher
	logger    *slog.Logger
}

func NewFanout(
	products ProductStore,
	tx TransactionManager,
	sessions SessionStore,
	search DocumentSink,
	rag DocumentSink,
	publisher Publisher,
	logger *slog.Logger,
) *Fanout {
	return &Fanout{
		products:  products,
		tx:        tx,
		sessions:  sessions,
		search:    search,
		rag:       rag,
		publisher: publisher,
		logger:    logger.With("component", "fanout"),
	}
}

// ApplyProduct upserts product into all three stores. A system-of-record
// failure aborts the call; there is no point indexing data that is not
// canonically stored.
func (f *Fanout) ApplyProduct(ctx context.Context, sessionID string, product *domain.Product, isNew bool) error {
	err := f.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := f.products.Upsert(txCtx, product)
		if err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}
		if err := f.products.ReplaceVariants(txCtx, id, product.Variants); err != nil {
			return fmt.Errorf("replace variants: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("system-of-record write for %s: %w", product.ANumber, err)
	}

	for _, sink := range f.sinks() {
		if err := sink.UpsertDocument(ctx, product); err != nil {
			f.recordSinkError(ctx, sessionID, product.ANumber, sink.Name(), err)
		}
	}

	if f.publisher != nil {
		action := ActionUpdate
		if isNew {
			action = ActionCreate
		}
		if err := f.publisher.PublishProduct(ctx, product, action); err != nil {
			f.logger.Warn("failed to publish product event",
				"external_key", product.ANumber,
				"action", action,
				"error", err,
			)
		}
	}

	return nil
}

// RemoveProduct deletes the product from all three stores. Absence in
// any sink is not an error; the deletes are idempotent.
func (f *Fanout) RemoveProduct(ctx context.Context, sessionID, supplierCode, externalKey string) error {
	if err := f.products.Delete(ctx, supplierCode, externalKey); err != nil {
		return fmt.Errorf("system-of-record delete for %s: %w", externalKey, err)
	}

	for _, sink := range f.sinks() {
		if err := sink.DeleteDocument(ctx, supplierCode, externalKey); err != nil {
			f.recordSinkError(ctx, sessionID, externalKey, sink.Name(), err)
		}
	}

	if f.publisher != nil {
		if err := f.publisher.PublishRemoval(ctx, supplierCode, externalKey); err != nil {
			f.logger.Warn("failed to publish removal event",
				"external_key", externalKey,
				"error", err,
			)
		}
	}

	return nil
}

func (f *Fanout) sinks() []DocumentSink {
	var sinks []DocumentSink
	if f.search != nil {
		sinks = append(sinks, f.search)
	}
	if f.rag != nil {
		sinks = append(sinks, f.rag)
	}
	return sinks
}

func (f *Fanout) recordSinkError(ctx context.Context, sessionID, externalKey, sink string, err error) {
	f.logger.Warn("sink write failed",
		"sink", sink,
		"external_key", externalKey,
		"error", err,
	)

	appendErr := f.sessions.AppendError(ctx, &domain.SessionError{
		SessionID:   sessionID,
		ExternalKey: externalKey,
		Stage:       sink,
		Message:     err.Error(),
		OccurredAt:  time.Now().UTC(),
	})
	if appendErr != nil {
		f.logger.Error("failed to record sink error", "error", appendErr)
	}
}
