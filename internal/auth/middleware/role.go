package middleware

import (
	"net/http"

	"github.com/gestionprojet/backend/internal/auth/service"
	"github.com/gestionprojet/backend/internal/models"
)

// RoleMiddleware validates the bearer token and requires the caller's role to
// be at least requiredRole. Roles are ordered Member < Manager < Admin, so
// RoleMiddleware(models.RoleManager) admits both managers and admins.
func RoleMiddleware(tokenGenerator *service.TokenGenerator, requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cin, role, ok := authenticate(w, r, tokenGenerator)
			if !ok {
				return
			}

			if role < requiredRole {
				respondError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), cin, role)))
		})
	}
}
