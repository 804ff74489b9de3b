package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mtb/aren-app/internal/domain"
	"github.com/mtb/aren-app/internal/store"
)

// recordExt is the filename extension of persisted session records.
const recordExt = ".json"

// SessionStore persists one file per session at
// <base>/YYYY/MM/DD/<sessionId>.json. The partition key is the server's
// receipt date, not the session's start date; a record re-ingested after
// midnight therefore lands in a second partition.
type SessionStore struct {
	baseDir string
	logger  *slog.Logger

	// now is the receipt clock, replaceable in tests.
	now func() time.Time
}

// Ensure SessionStore satisfies the store interface.
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store rooted at baseDir. The directory
// tree is created lazily on the first ingest. A nil logger falls back to
// slog.Default.
func NewSessionStore(baseDir string, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		baseDir: baseDir,
		logger:  logger.With(slog.String("component", "session_store")),
		now:     time.Now,
	}
}

// Ingest implements store.SessionStore. It validates the record, stamps the
// receipt time and writes the partition file, overwriting any record the
// same session ID wrote earlier the same day.
func (s *SessionStore) Ingest(_ context.Context, record *domain.SessionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", store.ErrInvalidRecord)
	}

	// Both sentinels stay matchable: ErrInvalidRecord for the store
	// boundary, the domain validation error for callers that care why.
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidRecord, err)
	}

	received := s.now()
	record.RecordedAt = received

	dir := filepath.Join(s.baseDir,
		fmt.Sprintf("%04d", received.Year()),
		fmt.Sprintf("%02d", received.Month()),
		fmt.Sprintf("%02d", received.Day()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating partition directory: %v", store.ErrPersist, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding record: %v", store.ErrPersist, err)
	}

	path := filepath.Join(dir, record.SessionID+recordExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing record file: %v", store.ErrPersist, err)
	}

	s.logger.Debug("session record persisted",
		"session_id", record.SessionID, "path", path)
	return nil
}

// List implements store.SessionStore by walking the whole partition tree.
// Files that cannot be read or parsed are skipped with a warning so one
// corrupt record cannot take the listing down.
func (s *SessionStore) List(_ context.Context) ([]domain.SessionSummary, error) {
	summaries := []domain.SessionSummary{}

	err := s.walkRecords(func(path string, record *domain.SessionRecord) {
		summaries = append(summaries, record.Summary())
	})
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// Get implements store.SessionStore. When the same session ID exists in
// more than one date partition (possible after a re-ingest across a day
// boundary), the record visited last wins; which one that is, is
// deliberately unspecified.
func (s *SessionStore) Get(_ context.Context, sessionID string) (*domain.SessionRecord, error) {
	var found *domain.SessionRecord

	err := s.walkRecords(func(path string, record *domain.SessionRecord) {
		if strings.TrimSuffix(filepath.Base(path), recordExt) == sessionID {
			found = record
		}
	})
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrSessionNotFound, sessionID)
	}

	return found, nil
}

// walkRecords invokes fn for every readable record file under the base
// directory. A missing base directory means no sessions yet, not an error.
func (s *SessionStore) walkRecords(fn func(path string, record *domain.SessionRecord)) error {
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.baseDir {
				return filepath.SkipAll
			}
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), recordExt) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable session record",
				"path", path, "error", err)
			return nil
		}

		var record domain.SessionRecord
		if err := json.Unmarshal(data, &record); err != nil {
			s.logger.Warn("skipping malformed session record",
				"path", path, "error", err)
			return nil
		}

		fn(path, &record)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan session records: %w", err)
	}
	return nil
}
