package auth

import (
	"context"
	"net/http"
	"strings"
)

// Identity is the validated identity of the requester, derived from a
// verified token and scoped to a single request.
type Identity struct {
	UserID   string
	Username string
}

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromContext returns the Identity bound to the request context by
// RequireAuth, or false if the request was not authenticated.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RequireAuth creates a middleware that rejects requests without a valid
// bearer token. Why a token failed is never revealed to the client; every
// failure mode yields the same 401.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing authorization header", http.StatusUnauthorized)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			identity := Identity{UserID: claims.Subject, Username: claims.Username}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
