package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the operation targeted a row that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means a malformed identifier was supplied.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidQuery means the search term was empty after trimming.
	ErrInvalidQuery = errors.New("search query is required")
)

// ValidationError reports a missing required field or an enumerated field out
// of range. Validation always runs before any write is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StorageError wraps an underlying datastore failure. The wrapped error stays
// available for logging; the message exposes no query text to callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage failure during %s", e.Op) }
func (e *StorageError) Unwrap() error { return e.Err }

func storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
