package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret")

	token, err := ts.Issue("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenValidity, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerifyMalformedToken(t *testing.T) {
	ts := NewTokenService("test-secret")

	_, err := ts.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	secret := "test-secret"
	past := time.Now().Add(-48 * time.Hour)
	claims := &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenValidity)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	ts := NewTokenService(secret)
	_, err = ts.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An expired token and a tampered one fail identically.
	_, tamperedErr := ts.Verify(expired + "x")
	assert.Equal(t, tamperedErr, err)
}

func TestVerifyRejectsNonHMACToken(t *testing.T) {
	// alg=none style tokens must not pass the keyfunc.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
