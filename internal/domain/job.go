package domain

import "time"

// Job statuses persisted in Postgres.
const (
	JobStatusQueued       = "queued"
	JobStatusInFlight     = "in_flight"
	JobStatusSucceeded    = "succeeded"
	JobStatusDeadLettered = "dead_lettered"
)

// Job actions.
const (
	JobActionUpsert = "upsert"
	JobActionRemove = "remove"
)

// Job classifications, set at enqueue time from the diff result so the
// worker can count the outcome under the right session total.
const (
	JobClassNew     = "new"
	JobClassChanged = "changed"
	JobClassRemoved = "removed"
)

// Job priorities. Removals run first so stale documents leave the sinks
// before new fetch traffic starts.
const (
	PriorityLow    = 0
	PriorityNormal = 5
	PriorityHigh   = 10
)

// SyncJob is one unit of per-product work owned by at most one worker at
// a time. Ownership returns to the queue on nack or lease expiry.
type SyncJob struct {
	ID             int64      `db:"id"`
	SessionID      string     `db:"session_id"`
	SupplierCode   string     `db:"supplier_code"`
	ExternalKey    string     `db:"external_key"`
	SourceURL      string     `db:"source_url"`
	Action         string     `db:"action"`
	Classification string     `db:"classification"`
	ContentHash    string     `db:"content_hash"`
	Priority       int        `db:"priority"`
	Attempt        int        `db:"attempt"`
	MaxAttempts    int        `db:"max_attempts"`
	Status         string     `db:"status"`
	RunAt          time.Time  `db:"run_at"`
	LeaseExpiresAt *time.Time `db:"lease_expires_at"`
	LastError      *string    `db:"last_error"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
