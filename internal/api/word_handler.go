package api

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mtb/aren-app/internal/api/shared"
	"github.com/mtb/aren-app/internal/catalog"
	"github.com/mtb/aren-app/internal/selector"
)

// WordResponse carries a single selected word.
type WordResponse struct {
	Word string `json:"word"`
}

// CountsResponse lists the available syllable counts, ascending.
type CountsResponse struct {
	Counts []int `json:"counts"`
}

// HealthResponse reports basic liveness plus catalog shape.
type HealthResponse struct {
	OK         bool      `json:"ok"`
	Counts     int       `json:"counts"`
	TotalWords int       `json:"totalWords"`
	Time       time.Time `json:"time"`
}

// WordHandler serves word selection requests from the immutable catalog.
type WordHandler struct {
	catalog *catalog.Catalog
	rng     *rand.Rand // nil in production; seeded in tests
	logger  *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(c *catalog.Catalog, logger *slog.Logger) *WordHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		catalog: c,
		logger:  logger.With(slog.String("component", "word_handler")),
	}
}

// GetCounts handles GET /api/word-counts requests.
func (h *WordHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CountsResponse{Counts: h.catalog.Counts()})
}

// GetRandomWord handles GET /api/word requests (and the /api/word-random
// alias) by drawing uniformly across all buckets.
func (h *WordHandler) GetRandomWord(w http.ResponseWriter, r *http.Request) {
	word, err := selector.PickUnconstrained(h.rng, h.catalog)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WordResponse{Word: word})
}

// GetWordForCount handles GET /api/word/{count} requests by drawing
// uniformly from the bucket with exactly that syllable count.
func (h *WordHandler) GetWordForCount(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "count")
	count, err := strconv.Atoi(param)
	if err != nil || count <= 0 {
		h.logger.Warn("invalid syllable count parameter", slog.String("count", param))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid count parameter")
		return
	}

	word, err := selector.PickForCount(h.rng, h.catalog, count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WordResponse{Word: word})
}

// GetHealth handles GET /api/health requests.
func (h *WordHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		OK:         true,
		Counts:     len(h.catalog.Counts()),
		TotalWords: h.catalog.TotalWords(),
		Time:       time.Now().UTC(),
	})
}
