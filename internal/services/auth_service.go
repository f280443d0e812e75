package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jaeholee/agenda-be/internal/models"
	"github.com/jaeholee/agenda-be/internal/repository"
)

// TokenIssuer mints signed identity tokens. Implemented by auth.TokenService.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token    string
	UserID   string
	Username string
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Signup(ctx context.Context, username string) (models.User, error)
	Login(ctx context.Context, username string) (LoginResult, error)
}

// AuthService implements signup and login business rules. Login deliberately
// checks nothing beyond username existence: there are no passwords in this
// system, and that policy must not be strengthened here.
type AuthService struct {
	users              repository.UserRepository
	tokens             TokenIssuer
	allowEmptyUsername bool
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer, allowEmptyUsername bool) *AuthService {
	return &AuthService{users: users, tokens: tokens, allowEmptyUsername: allowEmptyUsername}
}

// Signup creates a new user unless the username is already taken.
func (s *AuthService) Signup(ctx context.Context, username string) (models.User, error) {
	if !s.allowEmptyUsername && strings.TrimSpace(username) == "" {
		return models.User{}, ErrInvalidUsername
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to check user existence")
		return models.User{}, ErrDatabase
	}
	if exists {
		return models.User{}, ErrUserAlreadyExists
	}

	id, err := s.users.Save(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to save user")
		return models.User{}, ErrDatabase
	}

	return models.User{ID: id, Username: username}, nil
}

// Login authenticates by username existence and issues an identity token.
func (s *AuthService) Login(ctx context.Context, username string) (LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to look up user")
		return LoginResult{}, ErrDatabase
	}
	if user == nil {
		return LoginResult{}, ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Token: token, UserID: user.ID, Username: user.Username}, nil
}
