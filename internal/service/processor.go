package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"promisync/internal/domain"
	"promisync/internal/httpclient"
)

// Processor executes one sync job: fetch the product document, transform
// it, and fan the result out to the stores. A nil return means the job
// succeeded; a PermanentError means it must not be retried.
type Processor struct {
	sources  map[string]SupplierSource
	fanout   *Fanout
	sessions SessionStore
	logger   *slog.Logger
}

func NewProcessor(sources map[string]SupplierSource, fanout *Fanout, sessions SessionStore, logger *slog.Logger) *Processor {
	return &Processor{
		sources:  sources,
		fanout:   fanout,
		sessions: sessions,
		logger:   logger.With("component", "processor"),
	}
}

func (p *Processor) Process(ctx context.Context, job *domain.SyncJob) error {
	switch job.Action {
	case domain.JobActionRemove:
		return p.processRemoval(ctx, job)
	case domain.JobActionUpsert:
		return p.processUpsert(ctx, job)
	default:
		return &PermanentError{Err: fmt.Errorf("unknown job action %q", job.Action)}
	}
}

func (p *Processor) processRemoval(ctx context.Context, job *domain.SyncJob) error {
	if err := p.fanout.RemoveProduct(ctx, job.SessionID, job.SupplierCode, job.ExternalKey); err != nil {
		return err
	}
	return p.sessions.AddTotals(ctx, job.SessionID, domain.SessionTotals{Removed: 1})
}

func (p *Processor) processUpsert(ctx context.Context, job *domain.SyncJob) error {
	source, ok := p.sources[job.SupplierCode]
	if !ok {
		return &PermanentError{Err: fmt.Errorf("%w: %s", ErrUnknownSupplier, job.SupplierCode)}
	}

	product, err := source.FetchProduct(ctx, job.SourceURL, job.ContentHash)
	if err != nil {
		return classifyFetchError(err)
	}

	isNew := job.Classification == domain.JobClassNew
	if err := p.fanout.ApplyProduct(ctx, job.SessionID, product, isNew); err != nil {
		return err
	}

	delta := domain.SessionTotals{Updated: 1}
	if isNew {
		delta = domain.SessionTotals{Added: 1}
	}
	return p.sessions.AddTotals(ctx, job.SessionID, delta)
}

// classifyFetchError maps the fetcher's error taxonomy onto the job
// retry policy: non-429 client errors and undecodable documents are
// permanent; exhausted transient errors stay retryable for the queue's
// own backoff.
func classifyFetchError(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return &PermanentError{Err: err}
	}

	var exhausted *httpclient.ExhaustedError
	if errors.As(err, &exhausted) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// decode or transform failure
	return &PermanentError{Err: err}
}
