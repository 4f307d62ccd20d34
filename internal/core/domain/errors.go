package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
	// ErrAlreadyExistsInStore is returned when the durable store, not the
	// cache, detected the duplicate. It also matches ErrAlreadyExists.
	ErrAlreadyExistsInStore = fmt.Errorf("%w in DB", ErrAlreadyExists)
	// ErrConflict is the store-level uniqueness rejection on insert.
	ErrConflict           = errors.New("user id conflict")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrInvalidUser        = errors.New("invalid user")
)

// ValidationError describes a malformed UserRecord.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidUser
}

// BackendError wraps a connection or operation failure of the cache or the
// store. It matches ErrBackendUnavailable so callers never confuse it with a
// miss.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func NewBackendError(backend, op string, err error) *BackendError {
	return &BackendError{Backend: backend, Op: op, Err: err}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}
