package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mtb/aren-app/internal/api/shared"
	"github.com/mtb/aren-app/internal/domain"
	"github.com/mtb/aren-app/internal/store"
)

// IngestSessionRequest is the wire format the practice page posts when a
// session ends. Field names match the historical client payload.
type IngestSessionRequest struct {
	SessionID   string    `json:"sessionId"   validate:"required"`
	StartedAt   time.Time `json:"startedAt"   validate:"required"`
	FinishedAt  time.Time `json:"finishedAt"  validate:"required"`
	CountMode   string    `json:"countMode"   validate:"required"`
	TargetCount int       `json:"targetCount" validate:"required,gt=0"`
	Durations   []float64 `json:"durations"   validate:"dive,gte=0"`
	Words       []string  `json:"words"`
}

// IngestSessionResponse acknowledges a stored session.
type IngestSessionResponse struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"sessionId"`
}

// SessionListResponse wraps the session listing.
type SessionListResponse struct {
	Sessions []domain.SessionSummary `json:"sessions"`
}

// SessionDetailResponse wraps a full session record.
type SessionDetailResponse struct {
	Session *domain.SessionRecord `json:"session"`
}

// SessionHandler handles session record ingestion and reporting.
type SessionHandler struct {
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions store.SessionStore, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// IngestSession handles POST /api/performance requests. The record is
// stored under the server's receipt date with the caller's network origin
// attached; a same-day re-send for the same session ID overwrites.
func (h *SessionHandler) IngestSession(w http.ResponseWriter, r *http.Request) {
	var req IngestSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid session payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	record := &domain.SessionRecord{
		SessionID:    req.SessionID,
		StartedAt:    req.StartedAt,
		FinishedAt:   req.FinishedAt,
		CountMode:    domain.PracticeMode(req.CountMode),
		TargetCount:  req.TargetCount,
		Durations:    req.Durations,
		Words:        req.Words,
		ReceivedFrom: r.RemoteAddr,
	}

	if err := h.sessions.Ingest(r.Context(), record); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("session ingested",
		slog.String("session_id", record.SessionID),
		slog.Int("words_shown", len(record.Words)))
	shared.RespondWithJSON(w, r, http.StatusOK, IngestSessionResponse{
		OK:        true,
		SessionID: record.SessionID,
	})
}

// ListSessions handles GET /api/performance requests.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list sessions", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SessionListResponse{Sessions: sessions})
}

// GetSession handles GET /api/performance/{sessionId} requests.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if sessionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return
	}

	record, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SessionDetailResponse{Session: record})
}
