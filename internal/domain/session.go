package domain

import "time"

// Session states. A session is append-only history once it leaves Running.
const (
	SessionRunning   = "running"
	SessionCompleted = "completed"
	SessionFailed    = "failed"
	SessionCancelled = "cancelled"
)

// SessionTotals aggregates per-job outcomes for one session.
type SessionTotals struct {
	Scanned   int `db:"scanned" json:"scanned"`
	Added     int `db:"added" json:"added"`
	Updated   int `db:"updated" json:"updated"`
	Unchanged int `db:"unchanged" json:"unchanged"`
	Removed   int `db:"removed" json:"removed"`
	Failed    int `db:"failed" json:"failed"`
}

// SyncSession is one orchestrator run for one supplier. Only the most
// recent session per supplier may be Running.
type SyncSession struct {
	ID           string        `db:"id" json:"id"`
	SupplierCode string        `db:"supplier_code" json:"supplier_code"`
	State        string        `db:"state" json:"state"`
	Totals       SessionTotals `json:"totals"`
	StartedAt    time.Time     `db:"started_at" json:"started_at"`
	EndedAt      *time.Time    `db:"ended_at" json:"ended_at,omitempty"`
}

// SessionError is one isolated per-item failure collected during a
// session; it never aborts the session.
type SessionError struct {
	SessionID   string    `db:"session_id" json:"session_id"`
	ExternalKey string    `db:"external_key" json:"external_key"`
	Stage       string    `db:"stage" json:"stage"` // fetch, parse, transform, store, search_index, rag_store
	Message     string    `db:"message" json:"message"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurred_at"`
}

// Divergence kinds reported by verification.
const (
	DivergenceMissing      = "missing"       // present in system-of-record, absent in sink
	DivergenceOrphaned     = "orphaned"      // present in sink, absent in system-of-record
	DivergenceHashMismatch = "hash_mismatch" // same key, different content hash
)

// SinkDivergence is one per-key inconsistency found by verification.
type SinkDivergence struct {
	ExternalKey string `json:"external_key"`
	Sink        string `json:"sink"` // search_index or rag_store
	Kind        string `json:"kind"`
	StoreHash   string `json:"store_hash,omitempty"`
	SinkHash    string `json:"sink_hash,omitempty"`
}

// VerificationReport is the read-only result of verifySession. Repair is
// a new sync, not part of verification.
type VerificationReport struct {
	SessionID   string           `json:"session_id"`
	KeysChecked int              `json:"keys_checked"`
	Consistent  bool             `json:"consistent"`
	Divergences []SinkDivergence `json:"divergences"`
	CheckedAt   time.Time        `json:"checked_at"`
}

// SupplierHealth is one supplier's contribution to pipeline health,
// derived from its most recent session.
type SupplierHealth struct {
	SupplierCode string       `json:"supplier_code"`
	Healthy      bool         `json:"healthy"`
	Reason       string       `json:"reason,omitempty"`
	LastSession  *SyncSession `json:"last_session,omitempty"`
}

// PipelineHealth aggregates per-supplier signals into one overall state.
type PipelineHealth struct {
	Status    string           `json:"status"` // healthy or degraded
	Suppliers []SupplierHealth `json:"suppliers"`
	CheckedAt time.Time        `json:"checked_at"`
}
