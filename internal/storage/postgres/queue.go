package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"promisync/internal/domain"
)

// JobQueue is a durable, priority-ordered job queue on Postgres.
// Ownership transfer is the atomic dequeue below (`FOR UPDATE SKIP
// LOCKED` plus a lease timestamp); a job whose owner never acks or
// nacks is returned to the queue by ReleaseExpired.
type JobQueue struct {
	db *sqlx.DB
}

func NewJobQueue(db *sqlx.DB) *JobQueue {
	return &JobQueue{db: db}
}

const jobColumns = `id, session_id, supplier_code, external_key, source_url, action,
	classification, content_hash, priority, attempt, max_attempts, status,
	run_at, lease_expires_at, last_error, created_at, updated_at`

func (q *JobQueue) Enqueue(ctx context.Context, job *domain.SyncJob) error {
	return q.db.QueryRowContext(ctx, `
		INSERT INTO sync_jobs (
			session_id, supplier_code, external_key, source_url, action,
			classification, content_hash, priority, max_attempts, status, run_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		job.SessionID,
		job.SupplierCode,
		job.ExternalKey,
		job.SourceURL,
		job.Action,
		job.Classification,
		job.ContentHash,
		job.Priority,
		job.MaxAttempts,
		domain.JobStatusQueued,
		job.RunAt,
	).Scan(&job.ID)
}

// DequeueNext hands out the runnable job with the highest priority
// (FIFO within equal priority), skipping any external key that already
// has a job in flight so writes for one product never race. Returns
// (nil, nil) when nothing is runnable.
func (q *JobQueue) DequeueNext(ctx context.Context, lease time.Duration) (*domain.SyncJob, error) {
	var job domain.SyncJob
	err := q.db.GetContext(ctx, &job, `
		UPDATE sync_jobs SET
			status = $1,
			attempt = attempt + 1,
			lease_expires_at = now() + make_interval(secs => $2),
			updated_at = now()
		WHERE id = (
			SELECT c.id FROM sync_jobs c
			WHERE c.status = $3
			  AND c.run_at <= now()
			  AND NOT EXISTS (
				SELECT 1 FROM sync_jobs f
				WHERE f.status = $1
				  AND f.supplier_code = c.supplier_code
				  AND f.external_key = c.external_key
			  )
			ORDER BY c.priority DESC, c.id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING `+jobColumns,
		domain.JobStatusInFlight,
		lease.Seconds(),
		domain.JobStatusQueued,
	)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (q *JobQueue) Ack(ctx context.Context, jobID int64) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE sync_jobs SET
			status = $2,
			lease_expires_at = NULL,
			updated_at = now()
		WHERE id = $1 AND status = $3`,
		jobID, domain.JobStatusSucceeded, domain.JobStatusInFlight,
	)
	return err
}

// Nack returns job ownership to the queue. A retryable failure
// re-queues with exponential backoff until max_attempts is spent, then
// dead-letters; a terminal failure dead-letters immediately.
func (q *JobQueue) Nack(ctx context.Context, jobID int64, retryable bool, reason string) error {
	if retryable {
		_, err := q.db.ExecContext(ctx, `
			UPDATE sync_jobs SET
				status = CASE WHEN attempt >= max_attempts THEN $2 ELSE $3 END,
				run_at = now() + backoff_delay(attempt),
				lease_expires_at = NULL,
				last_error = $4,
				updated_at = now()
			WHERE id = $1 AND status = $5`,
			jobID, domain.JobStatusDeadLettered, domain.JobStatusQueued, reason, domain.JobStatusInFlight,
		)
		return err
	}

	_, err := q.db.ExecContext(ctx, `
		UPDATE sync_jobs SET
			status = $2,
			lease_expires_at = NULL,
			last_error = $3,
			updated_at = now()
		WHERE id = $1 AND status = $4`,
		jobID, domain.JobStatusDeadLettered, reason, domain.JobStatusInFlight,
	)
	return err
}

// ReleaseExpired returns jobs with an expired lease to the queue; an
// expired lease is indistinguishable from an explicit retryable nack.
// Jobs whose attempts are spent are dead-lettered instead and returned
// to the caller so the loss reaches the session ledger.
func (q *JobQueue) ReleaseExpired(ctx context.Context) (int, []domain.SyncJob, error) {
	var released []domain.SyncJob
	err := q.db.SelectContext(ctx, &released, `
		UPDATE sync_jobs SET
			status = CASE WHEN attempt >= max_attempts THEN $1 ELSE $2 END,
			run_at = now() + backoff_delay(attempt),
			lease_expires_at = NULL,
			last_error = 'worker lease expired',
			updated_at = now()
		WHERE status = $3 AND lease_expires_at < now()
		RETURNING `+jobColumns,
		domain.JobStatusDeadLettered, domain.JobStatusQueued, domain.JobStatusInFlight,
	)
	if err != nil {
		return 0, nil, err
	}

	var deadLettered []domain.SyncJob
	for _, job := range released {
		if job.Status == domain.JobStatusDeadLettered {
			deadLettered = append(deadLettered, job)
		}
	}
	return len(released), deadLettered, nil
}

// PendingCount counts the session's jobs still queued or in flight.
func (q *JobQueue) PendingCount(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := q.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM sync_jobs
		WHERE session_id = $1 AND status IN ($2, $3)`,
		sessionID, domain.JobStatusQueued, domain.JobStatusInFlight,
	)
	return count, err
}

// DeleteQueued drops the session's not-yet-dispatched jobs; in-flight
// jobs keep their owner and finish naturally.
func (q *JobQueue) DeleteQueued(ctx context.Context, sessionID string) (int, error) {
	res, err := q.db.ExecContext(ctx, `
		DELETE FROM sync_jobs
		WHERE session_id = $1 AND status = $2`,
		sessionID, domain.JobStatusQueued,
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// KeysForSession lists the distinct external keys the session touched.
func (q *JobQueue) KeysForSession(ctx context.Context, sessionID string) ([]string, error) {
	var keys []string
	err := q.db.SelectContext(ctx, &keys, `
		SELECT DISTINCT external_key FROM sync_jobs
		WHERE session_id = $1
		ORDER BY external_key`,
		sessionID,
	)
	return keys, err
}
