// Package handlers provides JSON response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON envelope for plain error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as an ErrorResponse with the given status code.
// Server-side failures are logged at error level, client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}
