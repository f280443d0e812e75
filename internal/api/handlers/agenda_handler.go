package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jaeholee/agenda-be/internal/auth"
	"github.com/jaeholee/agenda-be/internal/services"
)

// AgendaHandler handles HTTP requests for agenda management.
type AgendaHandler struct {
	service services.AgendaServiceProvider
}

// NewAgendaHandler creates a new AgendaHandler.
func NewAgendaHandler(service services.AgendaServiceProvider) *AgendaHandler {
	return &AgendaHandler{service: service}
}

// CreateAgendaPayload defines the structure for agenda creation requests.
type CreateAgendaPayload struct {
	Title string `json:"title"`
}

// Create handles agenda creation for the authenticated user.
func (h *AgendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve identity from context")
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload CreateAgendaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agenda, err := h.service.Create(r.Context(), payload.Title, identity.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", identity.UserID).Msg("Failed to create agenda")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, agenda)
}
