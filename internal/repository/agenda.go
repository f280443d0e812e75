package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaeholee/agenda-be/internal/models"
)

// AgendaRepository abstracts persistence of agenda records.
type AgendaRepository interface {
	// Create stores a new agenda with zero vote counts and returns it.
	Create(ctx context.Context, title, createdBy string) (models.Agenda, error)
}

// SQLiteAgendaRepository is the SQLite-backed AgendaRepository.
type SQLiteAgendaRepository struct {
	db *sql.DB
}

// NewSQLiteAgendaRepository creates a SQLiteAgendaRepository.
func NewSQLiteAgendaRepository(db *sql.DB) *SQLiteAgendaRepository {
	return &SQLiteAgendaRepository{db: db}
}

func (r *SQLiteAgendaRepository) Create(ctx context.Context, title, createdBy string) (models.Agenda, error) {
	agenda := models.Agenda{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO agendas(id, title, created_by, created_at, agree_count, disagree_count) VALUES(?, ?, ?, ?, 0, 0)",
		agenda.ID, agenda.Title, agenda.CreatedBy, agenda.CreatedAt)
	if err != nil {
		return models.Agenda{}, fmt.Errorf("db error: %w", err)
	}
	return agenda, nil
}
