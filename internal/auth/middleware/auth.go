// Package middleware provides token authentication and role-gate middlewares
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gestionprojet/backend/internal/auth/service"
	"github.com/gestionprojet/backend/internal/models"
)

type contextKey string

const (
	userCINKey  contextKey = "userCIN"
	userRoleKey contextKey = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's CIN and
// role in the request context
func AuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cin, role, ok := authenticate(w, r, tokenGenerator)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), cin, role)))
		})
	}
}

// authenticate extracts and validates the bearer token, writing the error
// response itself when validation fails
func authenticate(w http.ResponseWriter, r *http.Request, tokenGenerator *service.TokenGenerator) (string, models.Role, bool) {
	// Expected format: "Authorization: Bearer <token>"
	var token string
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			token = parts[1]
		}
	}

	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return "", 0, false
	}

	cin, role, err := tokenGenerator.Validate(token)
	if err != nil {
		// A well-signed token without identity claims is a 403, anything
		// else (malformed, expired, bad signature) is a 401.
		if errors.Is(err, service.ErrMissingClaims) {
			respondError(w, http.StatusForbidden, "invalid token structure")
		} else {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
		}
		return "", 0, false
	}

	return cin, role, true
}

// withUser stores the caller's identity in the context
func withUser(ctx context.Context, cin string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, userCINKey, cin)
	return context.WithValue(ctx, userRoleKey, role)
}

// respondError writes the standard error envelope
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}

// GetUserCIN retrieves the caller's CIN from context
func GetUserCIN(ctx context.Context) (string, bool) {
	cin, ok := ctx.Value(userCINKey).(string)
	return cin, ok
}

// GetUserRole retrieves the caller's role from context
func GetUserRole(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(models.Role)
	return role, ok
}
