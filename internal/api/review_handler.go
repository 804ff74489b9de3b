package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mtb/aren-app/internal/api/shared"
	"github.com/mtb/aren-app/internal/store"
)

// FlagWordRequest is the body of a flag-word call.
type FlagWordRequest struct {
	Word string `json:"word" validate:"required"`
}

// OKResponse is the plain acknowledgment body.
type OKResponse struct {
	OK bool `json:"ok"`
}

// FlaggedWordsResponse lists all flagged words, duplicates included.
type FlaggedWordsResponse struct {
	Words []string `json:"words"`
}

// ReviewHandler handles the flagged-word review log: reviewers mark
// questionable words during practice and inspect or clear the list later.
type ReviewHandler struct {
	log    store.ReviewLog
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(log store.ReviewLog, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		log:    log,
		logger: logger.With(slog.String("component", "review_handler")),
	}
}

// FlagWord handles POST /api/check-word requests.
func (h *ReviewHandler) FlagWord(w http.ResponseWriter, r *http.Request) {
	var req FlagWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Word) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No word provided")
		return
	}

	if err := h.log.Flag(r.Context(), req.Word); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to flag word for review", err)
		return
	}

	h.logger.Debug("word flagged for review", slog.String("word", req.Word))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// ListFlaggedWords handles GET /api/check-list requests.
func (h *ReviewHandler) ListFlaggedWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.log.Words(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to read flagged words", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FlaggedWordsResponse{Words: words})
}

// ClearFlaggedWords handles DELETE /api/check-list requests.
func (h *ReviewHandler) ClearFlaggedWords(w http.ResponseWriter, r *http.Request) {
	if err := h.log.Clear(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to clear flagged words", err)
		return
	}

	h.logger.Info("review log cleared")
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}
