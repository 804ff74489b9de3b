package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb/aren-app/internal/api"
	"github.com/mtb/aren-app/internal/client"
	"github.com/mtb/aren-app/internal/config"
	"github.com/mtb/aren-app/internal/domain"
	"github.com/mtb/aren-app/internal/recorder"
)

// newTestApplication wires a full application against temp directories.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	dataDir := t.TempDir()
	files := map[string]string{
		"2_syllable.json": `["el ma", "ki tap"]`,
		"3_syllable.json": `["a ra ba"]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:               0,
			LogLevel:           "error",
			CORSAllowedOrigins: []string{"*"},
		},
		Catalog: config.CatalogConfig{DataDir: dataDir},
		Storage: config.StorageConfig{
			PerformanceDir: t.TempDir(),
			ReviewLogPath:  filepath.Join(t.TempDir(), "review.log"),
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(cfg, logger)
	require.NoError(t, err)
	return app
}

func TestNewApplicationFailsWithoutCatalog(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: 0, LogLevel: "error", CORSAllowedOrigins: []string{"*"}},
		Catalog: config.CatalogConfig{DataDir: t.TempDir()}, // no word lists
		Storage: config.StorageConfig{
			PerformanceDir: t.TempDir(),
			ReviewLogPath:  filepath.Join(t.TempDir(), "review.log"),
		},
	}

	_, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestRouterServesWordEndpoints(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	// Both mount prefixes serve the same API.
	for _, path := range []string{"/api/word-counts", "/aren/api/word-counts"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
		require.Equal(t, http.StatusOK, rr.Code, "path %s", path)

		var resp api.CountsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []int{2, 3}, resp.Counts)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/word/3", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var word api.WordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
	assert.Equal(t, "a ra ba", word.Word)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/word/9", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionRoundTrip(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	body := `{
		"sessionId": "sess-roundtrip",
		"startedAt": "2025-06-01T10:00:00Z",
		"finishedAt": "2025-06-01T10:00:06Z",
		"countMode": "random",
		"targetCount": 3,
		"durations": [2.5, 3.5],
		"words": ["el ma", "ki tap", "a ra ba"]
	}`

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/performance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Listing includes the session.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/performance", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var list api.SessionListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, "sess-roundtrip", list.Sessions[0].SessionID)

	// Detail returns the ingested fields unchanged.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/performance/sess-roundtrip", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var detail api.SessionDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	require.NotNil(t, detail.Session)
	assert.Equal(t, "sess-roundtrip", detail.Session.SessionID)
	assert.Equal(t, []float64{2.5, 3.5}, detail.Session.Durations)
	assert.Equal(t, []string{"el ma", "ki tap", "a ra ba"}, detail.Session.Words)
	assert.NotEmpty(t, detail.Session.ReceivedFrom)
	assert.False(t, detail.Session.RecordedAt.IsZero())

	// Unknown session is a 404.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/performance/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOpenEndedSessionCommitIsStored(t *testing.T) {
	router := newTestApplication(t).setupRouter()
	srv := httptest.NewServer(router)
	defer srv.Close()

	// An until-interrupted practice run has no preset word target; its
	// committed record must still pass ingest validation.
	rec := recorder.New(domain.ModeRandom, 0, client.New(srv.URL),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rec.Advance("el ma", base)
	rec.Advance("a ra ba", base.Add(3*time.Second))

	record := rec.Commit(context.Background())
	require.NotNil(t, record)
	assert.Equal(t, 2, record.TargetCount)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/performance/"+record.SessionID, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var detail api.SessionDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	require.NotNil(t, detail.Session)
	assert.Equal(t, 2, detail.Session.TargetCount)
	assert.Equal(t, []string{"el ma", "a ra ba"}, detail.Session.Words)
}

func TestReviewFlow(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	flag := func(word string) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/check-word",
			strings.NewReader(`{"word": "`+word+`"}`))
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	flag("örnek")
	flag("örnek")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/check-list", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var listed api.FlaggedWordsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Equal(t, []string{"örnek", "örnek"}, listed.Words)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/check-list", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/check-list", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Empty(t, listed.Words)
}
