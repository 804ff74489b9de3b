package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *SessionRecord {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &SessionRecord{
		SessionID:   "abc-123",
		StartedAt:   start,
		FinishedAt:  start.Add(6 * time.Second),
		CountMode:   ModeRandom,
		TargetCount: 3,
		Durations:   []float64{2.5, 3.5},
		Words:       []string{"el ma", "ki tap", "a ra ba"},
	}
}

func TestSessionRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionRecord)
		wantErr error
	}{
		{
			name:   "valid random mode",
			mutate: func(r *SessionRecord) {},
		},
		{
			name:   "valid fixed count mode",
			mutate: func(r *SessionRecord) { r.CountMode = ModeForCount(3) },
		},
		{
			name:    "missing session ID",
			mutate:  func(r *SessionRecord) { r.SessionID = "" },
			wantErr: ErrSessionIDEmpty,
		},
		{
			name:    "missing start timestamp",
			mutate:  func(r *SessionRecord) { r.StartedAt = time.Time{} },
			wantErr: ErrSessionStartEmpty,
		},
		{
			name:    "missing finish timestamp",
			mutate:  func(r *SessionRecord) { r.FinishedAt = time.Time{} },
			wantErr: ErrSessionFinishEmpty,
		},
		{
			name:    "missing mode",
			mutate:  func(r *SessionRecord) { r.CountMode = "" },
			wantErr: ErrSessionModeEmpty,
		},
		{
			name:    "malformed mode",
			mutate:  func(r *SessionRecord) { r.CountMode = "sometimes" },
			wantErr: ErrInvalidMode,
		},
		{
			name:    "non-positive count mode",
			mutate:  func(r *SessionRecord) { r.CountMode = "0" },
			wantErr: ErrInvalidMode,
		},
		{
			name:    "negative duration",
			mutate:  func(r *SessionRecord) { r.Durations = []float64{1.0, -0.5} },
			wantErr: ErrNegativeDuration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(rec)

			err := rec.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
				// Every validation failure matches the family sentinel.
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestPracticeModeCount(t *testing.T) {
	n, err := ModeForCount(4).Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ModeRandom.Count()
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestSessionRecordSummary(t *testing.T) {
	rec := validRecord()
	rec.ReceivedFrom = "203.0.113.7"

	sum := rec.Summary()
	assert.Equal(t, rec.SessionID, sum.SessionID)
	assert.Equal(t, rec.StartedAt, sum.StartedAt)
	assert.Equal(t, rec.FinishedAt, sum.FinishedAt)
	assert.Equal(t, rec.CountMode, sum.CountMode)
	assert.Equal(t, rec.TargetCount, sum.TargetCount)
	assert.Equal(t, rec.ReceivedFrom, sum.ReceivedFrom)
}
