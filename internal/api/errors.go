package api

import (
	"errors"
	"net/http"

	"github.com/mtb/aren-app/internal/catalog"
	"github.com/mtb/aren-app/internal/domain"
	"github.com/mtb/aren-app/internal/selector"
	"github.com/mtb/aren-app/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, catalog.ErrUnknownBucket),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidRecord),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// An empty pool means the catalog invariant was violated: a bug, not
	// a client mistake.
	case errors.Is(err, selector.ErrEmptyPool):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, catalog.ErrUnknownBucket):
		return "No words of that syllable count"

	case errors.Is(err, store.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrInvalidRecord),
		errors.Is(err, domain.ErrValidation):
		return "Invalid session record"

	case errors.Is(err, store.ErrPersist):
		return "Failed to store session"

	case errors.Is(err, selector.ErrEmptyPool):
		return "Word list empty"

	default:
		return "An unexpected error occurred"
	}
}
