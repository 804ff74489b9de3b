package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb/aren-app/internal/catalog"
	"github.com/mtb/aren-app/internal/domain"
)

func TestClientWordEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/word":
			_, _ = w.Write([]byte(`{"word": "el ma"}`))
		case "/api/word/3":
			_, _ = w.Write([]byte(`{"word": "a ra ba"}`))
		case "/api/word-counts":
			_, _ = w.Write([]byte(`{"counts": [2, 3]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	word, err := c.Word(ctx)
	require.NoError(t, err)
	assert.Equal(t, "el ma", word)

	word, err = c.WordForCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "a ra ba", word)

	counts, err := c.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, counts)

	// 404 on an unknown bucket maps to the catalog sentinel.
	_, err = c.WordForCount(ctx, 9)
	assert.ErrorIs(t, err, catalog.ErrUnknownBucket)
}

func TestClientIngest(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/performance", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ok": true, "sessionId": "sess-1"}`))
	}))
	defer srv.Close()

	record := &domain.SessionRecord{
		SessionID:   "sess-1",
		StartedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt:  time.Date(2025, 6, 1, 10, 0, 6, 0, time.UTC),
		CountMode:   domain.ModeRandom,
		TargetCount: 3,
		Durations:   []float64{2.5, 3.5},
		Words:       []string{"el ma", "ki tap", "a ra ba"},
	}

	require.NoError(t, New(srv.URL).Ingest(context.Background(), record))
	assert.Equal(t, "sess-1", received["sessionId"])
	assert.Equal(t, "random", received["countMode"])
}

func TestClientFlagWord(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/check-word", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).FlagWord(context.Background(), "ör dek"))
	assert.Equal(t, "ör dek", received["word"])
}

func TestClientIngestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).Ingest(context.Background(), &domain.SessionRecord{})
	assert.Error(t, err)
}
