package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorEnvelope is the uniform shape of every error response. Successful
// responses are the bare resource payload, not wrapped.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorEnvelope{Success: false, Message: message})
}

func FailWithDetails(w http.ResponseWriter, status int, message string, details any) {
	WriteJSON(w, status, ErrorEnvelope{Success: false, Message: message, Details: details})
}
