// Package recorder accumulates the timeline of one practice session and
// finalizes it into an immutable domain.SessionRecord exactly once.
package recorder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mtb/aren-app/internal/domain"
)

// State is the recorder lifecycle state.
type State int

// Recorder states. The only transitions are Idle -> Active on the first
// word and Active -> Committed on commit.
const (
	Idle State = iota
	Active
	Committed
)

// String returns a readable state name for logging.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Sink receives the finalized record of a committed session.
// The server-side session store and the practice client's HTTP ingest
// client both implement it.
type Sink interface {
	Ingest(ctx context.Context, record *domain.SessionRecord) error
}

// Recorder tracks the words shown during a practice session and the moment
// each was displayed. Commit turns the timeline into a SessionRecord and
// hands it to the sink, best-effort: a sink failure is logged and swallowed,
// never retried, and never surfaced to the practicing user.
//
// A Recorder belongs to a single practice flow and is not safe for
// concurrent use; commit idempotency exists to tolerate multiple triggers
// (back navigation, unload) firing in quick succession, not concurrency.
type Recorder struct {
	sessionID   string
	mode        domain.PracticeMode
	targetCount int

	times []time.Time
	words []string

	state     State
	committed *domain.SessionRecord

	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

// New creates an idle Recorder for one practice session and generates its
// session ID. A non-positive targetCount marks an open-ended session; its
// committed record carries the number of words actually shown instead.
// A nil logger falls back to slog.Default.
func New(mode domain.PracticeMode, targetCount int, sink Sink, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Recorder{
		sessionID:   uuid.NewString(),
		mode:        mode,
		targetCount: targetCount,
		sink:        sink,
		logger:      logger.With(slog.String("component", "recorder")),
		now:         time.Now,
	}
}

// SessionID returns the opaque session identifier.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// State returns the current lifecycle state.
func (r *Recorder) State() State {
	return r.state
}

// Advance records that word was displayed at the given time. The first call
// activates the session. Calls after commit are ignored.
func (r *Recorder) Advance(word string, at time.Time) {
	if r.state == Committed {
		return
	}

	if r.state == Idle {
		r.state = Active
	}

	r.times = append(r.times, at)
	r.words = append(r.words, word)
}

// Commit finalizes the session and sends the record to the sink. It is
// idempotent: the first call builds and sends the record, every later call
// is a no-op returning the same record. The returned record is nil only when
// commit is invoked on a session that never showed a word.
func (r *Recorder) Commit(ctx context.Context) *domain.SessionRecord {
	if r.state == Committed {
		return r.committed
	}

	if r.state == Idle || len(r.times) == 0 {
		r.logger.Debug("no session data to commit", "session_id", r.sessionID)
		r.state = Committed
		return nil
	}

	finishedAt := r.times[len(r.times)-1]
	if finishedAt.IsZero() {
		finishedAt = r.now()
	}

	durations := make([]float64, 0, len(r.times)-1)
	for i := 1; i < len(r.times); i++ {
		durations = append(durations, r.times[i].Sub(r.times[i-1]).Seconds())
	}

	words := make([]string, len(r.words))
	copy(words, r.words)

	// An open-ended session has no preset target; record the number of
	// words actually shown so the record still satisfies the wire contract
	// (targetCount must be positive).
	target := r.targetCount
	if target <= 0 {
		target = len(words)
	}

	record := &domain.SessionRecord{
		SessionID:   r.sessionID,
		StartedAt:   r.times[0],
		FinishedAt:  finishedAt,
		CountMode:   r.mode,
		TargetCount: target,
		Durations:   durations,
		Words:       words,
	}

	r.state = Committed
	r.committed = record

	if err := r.sink.Ingest(ctx, record); err != nil {
		// Fire and forget: the practice session itself is unaffected.
		r.logger.Warn("session commit failed",
			"session_id", r.sessionID, "error", err)
	} else {
		r.logger.Info("session committed",
			"session_id", r.sessionID,
			"words_shown", len(words),
			"mode", string(r.mode))
	}

	return record
}
