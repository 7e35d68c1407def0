package service

import "errors"

var (
	ErrSyncAlreadyRunning = errors.New("a sync is already running for this supplier")
	ErrNoActiveSession    = errors.New("no active sync session for this supplier")
	ErrUnknownSupplier    = errors.New("unknown supplier")
	ErrSessionNotFound    = errors.New("sync session not found")
)

// PermanentError marks a job failure that must not be retried: client
// errors other than 429, undecodable or untransformable documents.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return "permanent: " + e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether err carries a PermanentError anywhere in
// its chain.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}
