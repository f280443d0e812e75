package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jaeholee/agenda-be/internal/services"
)

// ErrorResponse is the common JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// respondServiceError maps service-level errors to HTTP responses. Pure and
// stateless: the only place the error taxonomy meets the wire.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		respondError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, services.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrInvalidUsername):
		respondError(w, http.StatusBadRequest, "Invalid username")
	case errors.Is(err, services.ErrDatabase):
		respondError(w, http.StatusInternalServerError, "Database error occurred")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
