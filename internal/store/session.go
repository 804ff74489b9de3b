package store

import (
	"context"

	"github.com/mtb/aren-app/internal/domain"
)

// SessionStore persists committed practice sessions and serves them back
// for reporting.
type SessionStore interface {
	// Ingest durably persists a session record, attaching the server
	// receipt time. Re-ingesting the same session ID on the same calendar
	// day overwrites the earlier record (last-write-wins).
	// Returns an error wrapping ErrPersist on validation or I/O failure.
	Ingest(ctx context.Context, record *domain.SessionRecord) error

	// List returns summaries of every stored session. Ordering is not
	// guaranteed beyond filesystem enumeration order.
	List(ctx context.Context) ([]domain.SessionSummary, error)

	// Get returns the full record for a session ID, or an error wrapping
	// ErrSessionNotFound when no record exists.
	Get(ctx context.Context, sessionID string) (*domain.SessionRecord, error)
}

// ReviewLog is the append-only log of words a reviewer has flagged as
// questionable. Duplicates are preserved; Clear discards everything.
type ReviewLog interface {
	Flag(ctx context.Context, word string) error
	Words(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
