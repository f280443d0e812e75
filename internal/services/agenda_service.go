package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jaeholee/agenda-be/internal/models"
	"github.com/jaeholee/agenda-be/internal/repository"
)

// AgendaServiceProvider defines the interface for agenda services.
type AgendaServiceProvider interface {
	Create(ctx context.Context, title, createdBy string) (models.Agenda, error)
}

// AgendaService provides business logic for agenda management.
type AgendaService struct {
	agendas repository.AgendaRepository
}

// NewAgendaService creates a new AgendaService.
func NewAgendaService(agendas repository.AgendaRepository) *AgendaService {
	return &AgendaService{agendas: agendas}
}

// Create stores a new agenda on behalf of the given user.
func (s *AgendaService) Create(ctx context.Context, title, createdBy string) (models.Agenda, error) {
	agenda, err := s.agendas.Create(ctx, title, createdBy)
	if err != nil {
		log.Error().Err(err).Str("created_by", createdBy).Msg("Failed to create agenda")
		return models.Agenda{}, ErrDatabase
	}
	return agenda, nil
}
