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

// AdminService is the interface that wraps admin user management
type AdminService interface {
	// Method CreateUser creates a new user with a hashed password.
	//
	// models.ErrUserExists is returned when the CIN or email is taken.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) error
	// Method GetUsersList returns all users without credential fields.
	GetUsersList(ctx context.Context) ([]models.User, error)
	// Method UpdateUser merges the provided fields into an existing user.
	UpdateUser(ctx context.Context, cin string, req *models.UpdateUserRequest) error
	// Method DeleteUser removes a user.
	//
	// models.ErrCannotDeleteSelf and models.ErrCannotDeleteAdmin protect the
	// caller's own account and admin accounts.
	DeleteUser(ctx context.Context, callerCIN, cin string) error
	// Method GetDashboardStats returns the aggregate dashboard counts.
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// AdminHandler handles admin user management HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes.
// Note: this assumes the router is already scoped to /api/admin and gated to
// the Admin role.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/add-user", h.AddUser)
	r.Get("/users", h.GetUsersList)
	r.Put("/users/{cin}", h.UpdateUser)
	r.Delete("/users/{cin}", h.DeleteUser)
	r.Get("/dashboard-stats", h.GetDashboardStats)
}

// AddUser handles POST /api/admin/add-user
// @Summary Create a user
// @Description Create a new user with CIN, name, email, password, and role
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User to create"
// @Success 201 {object} handlers.messageResponse "User added successfully"
// @Failure 400 {object} handlers.errorResponse "Missing or malformed fields"
// @Failure 409 {object} handlers.errorResponse "CIN or email already exists"
// @Security ApiKeyAuth
// @Router /api/admin/add-user [post]
func (h *AdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.CreateUser(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to create user")
		return
	}

	h.RespondMessage(w, http.StatusCreated, "User added successfully")
}

// GetUsersList handles GET /api/admin/users
// @Summary List users
// @Description Get all users ordered by role then name, without passwords
// @Tags admin
// @Produce json
// @Success 200 {array} models.User "List of users"
// @Security ApiKeyAuth
// @Router /api/admin/users [get]
func (h *AdminHandler) GetUsersList(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.GetUsersList(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get users list")
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT /api/admin/users/{cin}
// @Summary Update a user
// @Description Update a user's name, email, role, position, and phone
// @Tags admin
// @Accept json
// @Produce json
// @Param cin path string true "User CIN"
// @Param request body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.messageResponse "User updated successfully"
// @Failure 404 {object} handlers.errorResponse "User not found"
// @Failure 409 {object} handlers.errorResponse "Email already in use"
// @Security ApiKeyAuth
// @Router /api/admin/users/{cin} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	cin := chi.URLParam(r, "cin")

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.UpdateUser(r.Context(), cin, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update user")
		return
	}

	h.RespondMessage(w, http.StatusOK, "User updated successfully")
}

// deleteUserResponse confirms a deletion and names the removed user
type deleteUserResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	DeletedUserCIN string `json:"deletedUserCin"`
}

// DeleteUser handles DELETE /api/admin/users/{cin}
// @Summary Delete a user
// @Description Delete a user. Admin accounts and the caller's own account cannot be deleted.
// @Tags admin
// @Produce json
// @Param cin path string true "User CIN"
// @Success 200 {object} handlers.deleteUserResponse "User deleted successfully"
// @Failure 403 {object} handlers.errorResponse "Self-deletion or admin target"
// @Failure 404 {object} handlers.errorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{cin} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	cin := chi.URLParam(r, "cin")
	callerCIN, ok := middleware.GetUserCIN(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), callerCIN, cin); err != nil {
		h.RespondServiceError(w, err, "failed to delete user")
		return
	}

	h.RespondJSON(w, http.StatusOK, deleteUserResponse{
		Success:        true,
		Message:        "User deleted successfully",
		DeletedUserCIN: cin,
	})
}

// GetDashboardStats handles GET /api/admin/dashboard-stats
// @Summary Dashboard statistics
// @Description Get total user and project counts, plus project counts per status
// @Tags admin
// @Produce json
// @Success 200 {object} models.DashboardStats "Aggregate counts"
// @Security ApiKeyAuth
// @Router /api/admin/dashboard-stats [get]
func (h *AdminHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetDashboardStats(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get dashboard stats")
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
