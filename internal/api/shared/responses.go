package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard shape for error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and
// payload. Encoding failures are logged; at that point the status line
// has already been written, so the client sees a truncated body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"status", status,
			"trace_id", GetTraceID(r.Context()))
	}
}

// RespondWithError writes a standardized JSON error response. The
// message is sent to the client verbatim, so callers must pass a
// client-safe message rather than raw internal error text.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	}
	RespondWithJSON(w, r, status, resp)
}

// RespondWithErrorAndLog logs the underlying error with request context
// and then sends a sanitized error response to the client.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string, err error) {
	logger.ErrorContext(r.Context(), message,
		"error", err,
		"status", status,
		"path", r.URL.Path,
		"trace_id", GetTraceID(r.Context()))
	RespondWithError(w, r, status, message)
}
