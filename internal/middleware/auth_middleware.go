package middleware

import (
	"context"
	"net/http"
	"strings"

	"quillpad-server/internal/domain"
	"quillpad-server/internal/repository"
	"quillpad-server/pkg/jwt"
	"quillpad-server/pkg/response"
)

type contextKey string

const userKey contextKey = "authUser"

// Auth resolves the bearer token on each request into a full user record.
// The token alone is not enough: its subject must still exist in the user
// store, which guards against subjects that stopped resolving after the
// token was issued.
func Auth(jwtSecret string, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "invalid authorization header format")
				return
			}

			subject, err := jwt.ValidateToken(parts[1], jwtSecret)
			if err != nil {
				response.Unauthorized(w, "invalid or expired token")
				return
			}

			user, err := users.FindByEmail(r.Context(), subject)
			if err != nil {
				response.Unauthorized(w, "user not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user attached by Auth, or nil on
// unprotected routes.
func GetUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userKey).(*domain.User)
	return user
}
