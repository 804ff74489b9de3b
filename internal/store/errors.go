package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrPersist is returned when a write fails, whether because the record
	// is unusable or because of storage I/O (directory creation, file write).
	// Ingest failures are terminal per call; callers do not retry.
	ErrPersist = errors.New("persist failed")

	// ErrSessionNotFound indicates that no record exists for the requested session ID.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrInvalidRecord indicates that a session record was rejected before
	// writing because required fields are missing or inconsistent.
	ErrInvalidRecord = fmt.Errorf("%w: invalid record", ErrPersist)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
