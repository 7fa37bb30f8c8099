package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// errorResponse is the JSON envelope for failed requests
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// messageResponse is the JSON envelope for successful requests that carry
// only a message
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, errorResponse{Success: false, Message: message})
}

// RespondMessage sends a success JSON response carrying only a message
func (h *BaseHandler) RespondMessage(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, messageResponse{Success: true, Message: message})
}

// RespondServiceError maps a service error to its HTTP status and writes the
// error envelope. Unexpected errors are logged and hidden behind a generic
// message.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, logMessage string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(logMessage, zap.Error(err))
		h.RespondError(w, status, "server error")
		return
	}

	h.RespondError(w, status, err.Error())
}
