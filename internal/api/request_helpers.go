package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// idParam is the name of the record id path parameter.
const idParam = "id"

// pathID extracts the record id from the URL path. It writes a 400 response
// and returns false when the parameter is empty.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, idParam)
	if id == "" {
		HandleAPIError(w, r, domain.ErrInvalidID)
		return "", false
	}
	return id, true
}

// decodeInput decodes the request body into in. It writes a 400 response and
// returns false when the body is not valid JSON for the resource. Malformed
// bodies are logged at WARN since they usually mean a broken client.
func decodeInput(w http.ResponseWriter, r *http.Request, in interface{}) bool {
	if err := shared.DecodeJSON(w, r, in); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidFormat, err,
			shared.WithElevatedLogLevel())
		return false
	}
	return true
}

// respondNotFound writes the 404 body of a resource, e.g. {"error":"Car not found"}.
func respondNotFound(w http.ResponseWriter, r *http.Request, resource string) {
	shared.RespondWithError(w, r, http.StatusNotFound, resource+" not found")
}

// respondDeleted writes the success body of a delete, e.g.
// {"message":"Car deleted successfully"}.
func respondDeleted(w http.ResponseWriter, r *http.Request, resource string) {
	shared.RespondWithMessage(w, r, http.StatusOK, resource+" deleted successfully")
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}

func handlerLogger(base *slog.Logger, component string) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With(slog.String("component", component))
}
