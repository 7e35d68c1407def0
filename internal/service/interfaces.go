package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"promisync/internal/domain"
)

// ProductStore is the relational system-of-record, keyed by supplier
// code and family id.
type ProductStore interface {
	Upsert(ctx context.Context, product *domain.Product) (int64, error)
	ReplaceVariants(ctx context.Context, productID int64, variants []domain.Variant) error
	GetByExternalKey(ctx context.Context, supplierCode, aNumber string) (*domain.Product, error)
	FindByHash(ctx context.Context, supplierCode, hash string) (*domain.Product, error)
	HashesByKey(ctx context.Context, supplierCode string) (map[string]string, error)
	Delete(ctx context.Context, supplierCode, aNumber string) error
	ListBySupplier(ctx context.Context, supplierCode string) ([]domain.Product, error)
}

type CategoryStore interface {
	UpsertBatch(ctx context.Context, categories []domain.Category) error
}

// SessionStore is the sync session ledger. Totals updates must be
// atomic; workers and the orchestrator increment them concurrently.
type SessionStore interface {
	Create(ctx context.Context, session *domain.SyncSession) error
	Get(ctx context.Context, id string) (*domain.SyncSession, error)
	ActiveForSupplier(ctx context.Context, supplierCode string) (*domain.SyncSession, error)
	ListActive(ctx context.Context) ([]domain.SyncSession, error)
	HistoryForSupplier(ctx context.Context, supplierCode string, limit int) ([]domain.SyncSession, error)
	LatestPerSupplier(ctx context.Context) ([]domain.SyncSession, error)
	AddTotals(ctx context.Context, id string, delta domain.SessionTotals) error
	Finish(ctx context.Context, id, state string) error
	AppendError(ctx context.Context, e *domain.SessionError) error
	Errors(ctx context.Context, sessionID string) ([]domain.SessionError, error)
}

// JobQueue is the durable, priority-ordered queue of per-entity sync
// jobs. A dequeued job is owned by the caller until Ack, Nack, or lease
// expiry; no two jobs for the same external key are handed out
// concurrently.
type JobQueue interface {
	Enqueue(ctx context.Context, job *domain.SyncJob) error
	DequeueNext(ctx context.Context, lease time.Duration) (*domain.SyncJob, error)
	Ack(ctx context.Context, jobID int64) error
	Nack(ctx context.Context, jobID int64, retryable bool, reason string) error
	ReleaseExpired(ctx context.Context) (int, []domain.SyncJob, error)
	PendingCount(ctx context.Context, sessionID string) (int, error)
	DeleteQueued(ctx context.Context, sessionID string) (int, error)
	KeysForSession(ctx context.Context, sessionID string) ([]string, error)
}

// SupplierSource fetches one supplier's catalog.
type SupplierSource interface {
	SupplierCode() string
	FetchManifest(ctx context.Context) ([]domain.ManifestEntry, []error, error)
	FetchCategories(ctx context.Context) ([]domain.Category, []error, error)
	FetchProduct(ctx context.Context, sourceURL, contentHash string) (*domain.Product, error)
	TestConnection(ctx context.Context) error
}

// DocumentSink is a downstream document store (search index or RAG
// store). All operations are idempotent and keyed by supplier code plus
// external key. Exists reports presence and the stored content hash.
type DocumentSink interface {
	Name() string
	UpsertDocument(ctx context.Context, product *domain.Product) error
	DeleteDocument(ctx context.Context, supplierCode, externalKey string) error
	Exists(ctx context.Context, supplierCode, externalKey string) (bool, string, error)
}

// Publisher announces applied catalog changes on the event bus.
type Publisher interface {
	PublishProduct(ctx context.Context, product *domain.Product, action string) error
	PublishRemoval(ctx context.Context, supplierCode, externalKey string) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
