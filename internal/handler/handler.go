package handler

import (
	"encoding/json"
	"net/http"

	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  model.FieldErrors `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing sensible left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to its HTTP status.
func writeDomainError(w http.ResponseWriter, err *model.DomainError, logger zerolog.Logger) {
	status := http.StatusBadRequest
	switch err.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeNoOrder:
		status = http.StatusNotFound
	case model.ErrCodeCheckoutInProgress:
		status = http.StatusConflict
	case model.ErrCodeConfiguration, model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	logger.Warn().Str("code", err.Code).Int("status", status).Msg(err.Message)
	writeJSON(w, status, ErrorResponse{Error: err.Code, Message: err.Message})
}

// sessionID extracts the session identifier from the request. A missing
// session id is a client error; every cart and checkout operation is
// session-scoped.
func sessionID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (string, bool) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id is required", logger)
		return "", false
	}
	return id, true
}
