package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaeholee/agenda-be/internal/auth"
	"github.com/jaeholee/agenda-be/internal/models"
)

// fakeUserRepo simulates the user repository without a database.
type fakeUserRepo struct {
	exists    bool
	existsErr error

	findUser *models.User
	findErr  error

	saveID  string
	saveErr error
}

func (f *fakeUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.findUser, f.findErr
}

func (f *fakeUserRepo) Save(ctx context.Context, username string) (string, error) {
	return f.saveID, f.saveErr
}

// failingIssuer simulates a token signing failure.
type failingIssuer struct{}

func (failingIssuer) Issue(userID, username string) (string, error) {
	return "", errors.New("signing failed")
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret")
}

func TestSignupSuccess(t *testing.T) {
	repo := &fakeUserRepo{saveID: "user-123"}
	svc := NewAuthService(repo, newTestTokenService(), true)

	user, err := svc.Signup(context.Background(), "john")
	require.NoError(t, err)

	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "john", user.Username)
}

func TestSignupDuplicateUser(t *testing.T) {
	repo := &fakeUserRepo{exists: true}
	svc := NewAuthService(repo, newTestTokenService(), true)

	_, err := svc.Signup(context.Background(), "john")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSignupExistsCheckFails(t *testing.T) {
	repo := &fakeUserRepo{existsErr: errors.New("connection refused")}
	svc := NewAuthService(repo, newTestTokenService(), true)

	_, err := svc.Signup(context.Background(), "john")
	assert.ErrorIs(t, err, ErrDatabase)
}

func TestSignupSaveFails(t *testing.T) {
	repo := &fakeUserRepo{saveErr: errors.New("constraint violation")}
	svc := NewAuthService(repo, newTestTokenService(), true)

	_, err := svc.Signup(context.Background(), "john")
	assert.ErrorIs(t, err, ErrDatabase)
}

func TestSignupEmptyUsernameAllowedByDefault(t *testing.T) {
	repo := &fakeUserRepo{saveID: "user-123"}
	svc := NewAuthService(repo, newTestTokenService(), true)

	user, err := svc.Signup(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", user.Username)
}

func TestSignupEmptyUsernameRejectedWhenGuarded(t *testing.T) {
	repo := &fakeUserRepo{saveID: "user-123"}
	svc := NewAuthService(repo, newTestTokenService(), false)

	for _, username := range []string{"", "   ", "\t"} {
		_, err := svc.Signup(context.Background(), username)
		assert.ErrorIs(t, err, ErrInvalidUsername)
	}
}

func TestLoginSuccess(t *testing.T) {
	tokens := newTestTokenService()
	repo := &fakeUserRepo{findUser: &models.User{ID: "user-123", Username: "john"}}
	svc := NewAuthService(repo, tokens, true)

	res, err := svc.Login(context.Background(), "john")
	require.NoError(t, err)

	assert.Equal(t, "user-123", res.UserID)
	assert.Equal(t, "john", res.Username)
	require.NotEmpty(t, res.Token)

	// The issued token must verify back to the same identity.
	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "john", claims.Username)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, newTestTokenService(), true)

	_, err := svc.Login(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginLookupFails(t *testing.T) {
	repo := &fakeUserRepo{findErr: errors.New("connection refused")}
	svc := NewAuthService(repo, newTestTokenService(), true)

	_, err := svc.Login(context.Background(), "john")
	assert.ErrorIs(t, err, ErrDatabase)
}

func TestLoginTokenIssueFails(t *testing.T) {
	repo := &fakeUserRepo{findUser: &models.User{ID: "user-123", Username: "john"}}
	svc := NewAuthService(repo, failingIssuer{}, true)

	_, err := svc.Login(context.Background(), "john")
	assert.ErrorIs(t, err, ErrInternal)
}
