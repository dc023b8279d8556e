package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/user-admin/internal/domain"
	"github.com/msomdec/user-admin/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated principal from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring authentication.
// It reads the bearer token from the Authorization header, verifies it, loads
// the principal from the store and injects it into the request context.
// Missing tokens get 401, invalid or expired tokens 403, and a principal that
// no longer exists 404.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, "authenticate request", err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose principal is not an admin with 403.
// It must run inside RequireAuth.
func RequireAdmin(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := auth.RequireAdmin(UserFromContext(r.Context())); err != nil {
			writeError(w, "authorize request", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
