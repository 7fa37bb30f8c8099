package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gestionprojet/backend/internal/auth/middleware"
	"github.com/gestionprojet/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps authentication business logic
type AuthService interface {
	// Method Login authenticates a user by CIN, password, and role, and
	// returns a signed session token together with the user.
	//
	// models.ErrInvalidCredentials is returned when the user does not exist,
	// the role does not match, or the password is wrong.
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.With(authMiddleware).Get("/verify", h.Verify)
	})
}

// Login handles POST /auth/login
// @Summary Login
// @Description Authenticate with CIN, password, and role. Returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} handlers.errorResponse "Missing or malformed fields"
// @Failure 401 {object} handlers.errorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to login user")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    user.Public(),
	})
}

// verifyResponse echoes the verified token claims
type verifyResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    verifiedUser `json:"user"`
}

// verifiedUser is the claim set carried by the session token
type verifiedUser struct {
	CIN  string      `json:"cin"`
	Role models.Role `json:"role"`
}

// Verify handles GET /auth/verify
// @Summary Verify token
// @Description Check that the bearer token is valid and echo its claims
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} handlers.verifyResponse "Token is valid"
// @Failure 401 {object} handlers.errorResponse "Missing or invalid token"
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	cin, _ := middleware.GetUserCIN(r.Context())
	role, _ := middleware.GetUserRole(r.Context())

	h.RespondJSON(w, http.StatusOK, verifyResponse{
		Success: true,
		Message: "Token is valid",
		User:    verifiedUser{CIN: cin, Role: role},
	})
}
