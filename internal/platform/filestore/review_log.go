package filestore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mtb/aren-app/internal/store"
)

// ReviewLog is a file-backed append-only log of flagged words, one word per
// line. Flagging the same word twice appends two lines; the log is a raw
// trail for manual review, not a set.
type ReviewLog struct {
	path string

	// mu serializes appends and truncation; concurrent flag calls would
	// otherwise interleave partial lines.
	mu sync.Mutex
}

var _ store.ReviewLog = (*ReviewLog)(nil)

// NewReviewLog opens the review log at path, creating an empty file if none
// exists so later appends and reads cannot fail on a missing file.
func NewReviewLog(path string) (*ReviewLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize review log %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to initialize review log %q: %w", path, err)
	}

	return &ReviewLog{path: path}, nil
}

// Flag appends a word to the log.
func (l *ReviewLog) Flag(_ context.Context, word string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening review log: %v", store.ErrPersist, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(word + "\n"); err != nil {
		return fmt.Errorf("%w: appending to review log: %v", store.ErrPersist, err)
	}

	return nil
}

// Words returns every flagged word in append order, duplicates included.
func (l *ReviewLog) Words(_ context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read review log: %w", err)
	}

	words := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			words = append(words, line)
		}
	}

	return words, nil
}

// Clear truncates the log.
func (l *ReviewLog) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.WriteFile(l.path, nil, 0o644); err != nil {
		return fmt.Errorf("%w: clearing review log: %v", store.ErrPersist, err)
	}

	return nil
}
