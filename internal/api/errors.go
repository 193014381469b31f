package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// Client-facing messages.
const (
	msgInvalidFormat = "Invalid request format"
	msgInvalidID     = "Invalid record id"
	msgUnavailable   = "Request was cancelled"
	msgUnexpected    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// The request context ended before the store was touched.
	case errors.Is(err, store.ErrAborted):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgUnexpected
	case errors.Is(err, domain.ErrInvalidFormat):
		return msgInvalidFormat
	case errors.Is(err, domain.ErrInvalidID):
		return msgInvalidID
	case errors.Is(err, store.ErrAborted):
		return msgUnavailable
	default:
		return msgUnexpected
	}
}

// HandleAPIError is the single failure path for errors a handler cannot
// answer itself. The client gets a safe message (and, for 5xx, the trace ID);
// the redacted error is logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
