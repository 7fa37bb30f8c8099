package handlers

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gestionprojet/backend/internal/auth/middleware"
	"github.com/gestionprojet/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxImageSize bounds the accepted profile image upload size.
const maxImageSize = 5 << 20

// ProfileService is the interface that wraps the authenticated user's own profile
type ProfileService interface {
	// Method GetUserInfo returns the caller's full profile.
	GetUserInfo(ctx context.Context, cin string) (*models.User, error)
	// Method UpdateProfile changes the caller's password and/or profile image.
	UpdateProfile(ctx context.Context, cin, password string, image io.Reader, imageFilename string) (*models.ProfileUser, error)
}

// ProfileHandler handles profile HTTP requests for the authenticated user
type ProfileHandler struct {
	BaseHandler
	profileService ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		profileService: profileService,
	}
}

// RegisterRoutes registers all profile handler routes.
// Note: this assumes the router already runs the auth middleware.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/user/user-info", h.GetUserInfo)
	r.Put("/profile/update", h.UpdateProfile)
}

// userInfoResponse wraps the caller's profile
type userInfoResponse struct {
	Success  bool         `json:"success"`
	UserInfo *models.User `json:"userInfo"`
}

// GetUserInfo handles GET /user/user-info
// @Summary Get own user info
// @Description Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.userInfoResponse "User info"
// @Failure 404 {object} handlers.errorResponse "User not found"
// @Security ApiKeyAuth
// @Router /user/user-info [get]
func (h *ProfileHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	cin, ok := middleware.GetUserCIN(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	info, err := h.profileService.GetUserInfo(r.Context(), cin)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get user info")
		return
	}

	h.RespondJSON(w, http.StatusOK, userInfoResponse{
		Success:  true,
		UserInfo: info,
	})
}

// updateProfileResponse confirms a profile update with the fresh display info
type updateProfileResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *models.ProfileUser `json:"user"`
}

// UpdateProfile handles PUT /profile/update
// @Summary Update own profile
// @Description Change the authenticated user's password and/or profile image. Multipart form with an optional "password" field and an optional "image" file (image/*, max 5MB).
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param password formData string false "New password, at least 8 characters"
// @Param image formData file false "Profile image"
// @Success 200 {object} handlers.updateProfileResponse "Profile updated successfully"
// @Failure 400 {object} handlers.errorResponse "Nothing to update or invalid input"
// @Security ApiKeyAuth
// @Router /profile/update [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	cin, ok := middleware.GetUserCIN(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	password := r.FormValue("password")

	var (
		image         io.Reader
		imageFilename string
	)
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		if header.Size > maxImageSize {
			h.RespondError(w, http.StatusBadRequest, "image exceeds the 5MB limit")
			return
		}
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			h.RespondError(w, http.StatusBadRequest, "only image files are accepted")
			return
		}

		image = file
		imageFilename = filepath.Base(header.Filename)
	} else if err != http.ErrMissingFile {
		h.RespondError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	user, err := h.profileService.UpdateProfile(r.Context(), cin, password, image, imageFilename)
	if err != nil {
		h.RespondServiceError(w, err, "failed to update profile")
		return
	}

	h.RespondJSON(w, http.StatusOK, updateProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    user,
	})
}
