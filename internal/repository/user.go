package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaeholee/agenda-be/internal/models"
)

// UserRepository abstracts persistence of user records so business logic can
// be tested against a fake. Implementations must be safe for concurrent use
// and must enforce username uniqueness at the storage boundary.
type UserRepository interface {
	// Exists reports whether a user with the exact username exists.
	Exists(ctx context.Context, username string) (bool, error)
	// FindByUsername returns the matching user, or (nil, nil) if none exists.
	// An error means storage failure, never "not found".
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Save creates a user with a freshly generated ID and returns that ID.
	Save(ctx context.Context, username string) (string, error)
}

// SQLiteUserRepository is the SQLite-backed UserRepository.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a SQLiteUserRepository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

func (r *SQLiteUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT count(*) FROM users WHERE username = ?", username)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &user, nil
}

func (r *SQLiteUserRepository) Save(ctx context.Context, username string) (string, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users(id, username, created_at) VALUES(?, ?, ?)",
		id, username, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
