package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"promisync/internal/domain"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// SessionStore is the sync session ledger. Totals are incremented with
// plain SQL additions so workers and the orchestrator never lose
// concurrent updates.
type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

type sessionRow struct {
	ID           string     `db:"id"`
	SupplierCode string     `db:"supplier_code"`
	State        string     `db:"state"`
	Scanned      int        `db:"scanned"`
	Added        int        `db:"added"`
	Updated      int        `db:"updated"`
	Unchanged    int        `db:"unchanged"`
	Removed      int        `db:"removed"`
	Failed       int        `db:"failed"`
	StartedAt    time.Time  `db:"started_at"`
	EndedAt      *time.Time `db:"ended_at"`
}

func (r *sessionRow) toDomain() domain.SyncSession {
	return domain.SyncSession{
		ID:           r.ID,
		SupplierCode: r.SupplierCode,
		State:        r.State,
		Totals: domain.SessionTotals{
			Scanned:   r.Scanned,
			Added:     r.Added,
			Updated:   r.Updated,
			Unchanged: r.Unchanged,
			Removed:   r.Removed,
			Failed:    r.Failed,
		},
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
	}
}

const sessionColumns = `id, supplier_code, state, scanned, added, updated, unchanged, removed, failed, started_at, ended_at`

func (s *SessionStore) Create(ctx context.Context, session *domain.SyncSession) error {
	// the partial unique index on (supplier_code) WHERE state='running'
	// rejects a concurrent second start
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_sessions (id, supplier_code, state, started_at)
		VALUES ($1, $2, $3, $4)`,
		session.ID, session.SupplierCode, session.State, session.StartedAt,
	)
	return err
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.SyncSession, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+sessionColumns+" FROM sync_sessions WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	session := row.toDomain()
	return &session, nil
}

func (s *SessionStore) ActiveForSupplier(ctx context.Context, supplierCode string) (*domain.SyncSession, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+sessionColumns+" FROM sync_sessions WHERE supplier_code = $1 AND state = $2",
		supplierCode, domain.SessionRunning)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session := row.toDomain()
	return &session, nil
}

func (s *SessionStore) ListActive(ctx context.Context) ([]domain.SyncSession, error) {
	var rows []sessionRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+sessionColumns+" FROM sync_sessions WHERE state = $1 ORDER BY started_at",
		domain.SessionRunning)
	if err != nil {
		return nil, err
	}
	return toSessions(rows), nil
}

func (s *SessionStore) HistoryForSupplier(ctx context.Context, supplierCode string, limit int) ([]domain.SyncSession, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []sessionRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+sessionColumns+" FROM sync_sessions WHERE supplier_code = $1 ORDER BY started_at DESC LIMIT $2",
		supplierCode, limit)
	if err != nil {
		return nil, err
	}
	return toSessions(rows), nil
}

func (s *SessionStore) LatestPerSupplier(ctx context.Context) ([]domain.SyncSession, error) {
	var rows []sessionRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT DISTINCT ON (supplier_code) `+sessionColumns+`
		FROM sync_sessions
		ORDER BY supplier_code, started_at DESC`)
	if err != nil {
		return nil, err
	}
	return toSessions(rows), nil
}

func (s *SessionStore) AddTotals(ctx context.Context, id string, delta domain.SessionTotals) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sync_sessions SET
			scanned = scanned + $2,
			added = added + $3,
			updated = updated + $4,
			unchanged = unchanged + $5,
			removed = removed + $6,
			failed = failed + $7
		WHERE id = $1`,
		id, delta.Scanned, delta.Added, delta.Updated, delta.Unchanged, delta.Removed, delta.Failed,
	)
	return err
}

// Finish closes a running session. Finished sessions are append-only
// history; a second Finish is a no-op.
func (s *SessionStore) Finish(ctx context.Context, id, state string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sync_sessions SET state = $2, ended_at = now()
		WHERE id = $1 AND state = $3`,
		id, state, domain.SessionRunning,
	)
	return err
}

// FailOrphaned marks sessions left Running by a previous process as
// failed. Called once at startup.
func (s *SessionStore) FailOrphaned(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sync_sessions SET state = $1, ended_at = now()
		WHERE state = $2`,
		domain.SessionFailed, domain.SessionRunning,
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SessionStore) AppendError(ctx context.Context, e *domain.SessionError) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_session_errors (session_id, external_key, stage, message, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.SessionID, e.ExternalKey, e.Stage, e.Message, e.OccurredAt,
	)
	return err
}

func (s *SessionStore) Errors(ctx context.Context, sessionID string) ([]domain.SessionError, error) {
	var result []domain.SessionError
	err := s.db.SelectContext(ctx, &result, `
		SELECT session_id, external_key, stage, message, occurred_at
		FROM sync_session_errors
		WHERE session_id = $1
		ORDER BY occurred_at`,
		sessionID)
	return result, err
}

func toSessions(rows []sessionRow) []domain.SyncSession {
	sessions := make([]domain.SyncSession, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].toDomain())
	}
	return sessions
}
