package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Session-specific validation errors. Each wraps ErrValidation so callers
// can match the whole family with a single errors.Is check.
var (
	// ErrSessionIDEmpty is returned when a session record has no session ID.
	ErrSessionIDEmpty = fmt.Errorf("%w: session ID cannot be empty", ErrValidation)

	// ErrSessionStartEmpty is returned when a session record has no start timestamp.
	ErrSessionStartEmpty = fmt.Errorf("%w: session start timestamp cannot be empty", ErrValidation)

	// ErrSessionFinishEmpty is returned when a session record has no finish timestamp.
	ErrSessionFinishEmpty = fmt.Errorf("%w: session finish timestamp cannot be empty", ErrValidation)

	// ErrSessionModeEmpty is returned when a session record has no practice mode.
	ErrSessionModeEmpty = fmt.Errorf("%w: session practice mode cannot be empty", ErrValidation)

	// ErrNegativeDuration is returned when a recorded inter-word gap is negative,
	// which would mean the timeline went backwards.
	ErrNegativeDuration = fmt.Errorf("%w: session durations cannot be negative", ErrValidation)
)

// PracticeMode identifies how words were selected during a session: the
// literal string "random" for unconstrained picks, or the decimal syllable
// count for fixed-bucket practice. The string form is the wire and storage
// format.
type PracticeMode string

// ModeRandom is the unconstrained selection mode.
const ModeRandom PracticeMode = "random"

// ModeForCount returns the practice mode for a fixed syllable count.
func ModeForCount(count int) PracticeMode {
	return PracticeMode(strconv.Itoa(count))
}

// IsRandom reports whether the mode is unconstrained selection.
func (m PracticeMode) IsRandom() bool {
	return m == ModeRandom
}

// Count returns the syllable count of a fixed-bucket mode.
// Returns ErrInvalidMode for the random mode or a malformed value.
func (m PracticeMode) Count() (int, error) {
	if m.IsRandom() {
		return 0, ErrInvalidMode
	}
	n, err := strconv.Atoi(string(m))
	if err != nil || n <= 0 {
		return 0, ErrInvalidMode
	}
	return n, nil
}

// SessionRecord is the immutable result of one committed practice session.
// The json tags are the wire format the practice page has always sent, so
// they stay camelCase; ReceivedFrom and RecordedAt are attached by the
// server at ingest time, never by the client.
type SessionRecord struct {
	SessionID   string       `json:"sessionId"`
	StartedAt   time.Time    `json:"startedAt"`
	FinishedAt  time.Time    `json:"finishedAt"`
	CountMode   PracticeMode `json:"countMode"`
	TargetCount int          `json:"targetCount"`

	// Durations holds the inter-word gaps in seconds; its length is one
	// less than the number of words shown.
	Durations []float64 `json:"durations"`

	// Words lists the words shown, in display order.
	Words []string `json:"words"`

	// ReceivedFrom is the network origin of the ingest call.
	ReceivedFrom string `json:"ip,omitempty"`

	// RecordedAt is the server receipt time, which also determines the
	// record's date partition.
	RecordedAt time.Time `json:"timestamp,omitempty"`
}

// Validate checks if the SessionRecord has valid data.
// Returns an error if any field fails validation.
func (r *SessionRecord) Validate() error {
	if r.SessionID == "" {
		return ErrSessionIDEmpty
	}

	if r.StartedAt.IsZero() {
		return ErrSessionStartEmpty
	}

	if r.FinishedAt.IsZero() {
		return ErrSessionFinishEmpty
	}

	if r.CountMode == "" {
		return ErrSessionModeEmpty
	}

	if !r.CountMode.IsRandom() {
		if _, err := r.CountMode.Count(); err != nil {
			return err
		}
	}

	for _, d := range r.Durations {
		if d < 0 {
			return ErrNegativeDuration
		}
	}

	return nil
}

// Summary projects the record down to the fields shown in session listings.
func (r *SessionRecord) Summary() SessionSummary {
	return SessionSummary{
		SessionID:    r.SessionID,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		CountMode:    r.CountMode,
		TargetCount:  r.TargetCount,
		ReceivedFrom: r.ReceivedFrom,
	}
}

// SessionSummary is the listing projection of a SessionRecord.
type SessionSummary struct {
	SessionID    string       `json:"sessionId"`
	StartedAt    time.Time    `json:"startedAt"`
	FinishedAt   time.Time    `json:"finishedAt"`
	CountMode    PracticeMode `json:"countMode"`
	TargetCount  int          `json:"targetCount"`
	ReceivedFrom string       `json:"ip,omitempty"`
}
