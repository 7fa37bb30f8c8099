package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CompetenceService is the interface that wraps the competence catalog
type CompetenceService interface {
	// Method CreateCompetence creates a competence and returns its ID.
	CreateCompetence(ctx context.Context, req *models.CompetenceRequest) (int, error)
	// Method GetCompetencesList returns all competences.
	GetCompetencesList(ctx context.Context) ([]models.Competence, error)
	// Method UpdateCompetence renames a competence.
	UpdateCompetence(ctx context.Context, id int, req *models.CompetenceRequest) error
	// Method DeleteCompetence removes a competence not referenced by any project.
	DeleteCompetence(ctx context.Context, id int) error
}

// CompetenceHandler handles competence catalog HTTP requests
type CompetenceHandler struct {
	BaseHandler
	competenceService CompetenceService
}

// NewCompetenceHandler creates a new competence handler
func NewCompetenceHandler(competenceService CompetenceService, logger *zap.Logger) *CompetenceHandler {
	return &CompetenceHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		competenceService: competenceService,
	}
}

// RegisterRoutes registers all competence handler routes.
// Note: this assumes the router is already scoped to /api/admin and gated to
// the Admin role.
func (h *CompetenceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/competences", func(r chi.Router) {
		r.Post("/", h.AddCompetence)
		r.Get("/", h.GetCompetencesList)
		r.Put("/{id}", h.UpdateCompetence)
		r.Delete("/{id}", h.DeleteCompetence)
	})
}

// addCompetenceResponse confirms a creation and carries the new competence ID
type addCompetenceResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CompetenceID int    `json:"competenceId"`
}

// AddCompetence handles POST /api/admin/competences
// @Summary Create a competence
// @Description Add a competence to the catalog; names are unique
// @Tags competences
// @Accept json
// @Produce json
// @Param request body models.CompetenceRequest true "Competence to create"
// @Success 201 {object} handlers.addCompetenceResponse "Competence added successfully"
// @Failure 409 {object} handlers.errorResponse "Competence already exists"
// @Security ApiKeyAuth
// @Router /api/admin/competences [post]
func (h *CompetenceHandler) AddCompetence(w http.ResponseWriter, r *http.Request) {
	var req models.CompetenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.competenceService.CreateCompetence(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create competence")
		return
	}

	h.RespondJSON(w, http.StatusCreated, addCompetenceResponse{
		Success:      true,
		Message:      "Competence added successfully",
		CompetenceID: id,
	})
}

// GetCompetencesList handles GET /api/admin/competences
// @Summary List competences
// @Description Get all competences ordered by name
// @Tags competences
// @Produce json
// @Success 200 {array} models.Competence "List of competences"
// @Security ApiKeyAuth
// @Router /api/admin/competences [get]
func (h *CompetenceHandler) GetCompetencesList(w http.ResponseWriter, r *http.Request) {
	competences, err := h.competenceService.GetCompetencesList(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get competences list")
		return
	}

	h.RespondJSON(w, http.StatusOK, competences)
}

// UpdateCompetence handles PUT /api/admin/competences/{id}
// @Summary Update a competence
// @Description Rename a competence; the new name must stay unique
// @Tags competences
// @Accept json
// @Produce json
// @Param id path int true "Competence ID"
// @Param request body models.CompetenceRequest true "Competence fields"
// @Success 200 {object} handlers.messageResponse "Competence updated successfully"
// @Failure 404 {object} handlers.errorResponse "Competence not found"
// @Failure 409 {object} handlers.errorResponse "Name already taken"
// @Security ApiKeyAuth
// @Router /api/admin/competences/{id} [put]
func (h *CompetenceHandler) UpdateCompetence(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid competence ID")
		return
	}

	var req models.CompetenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.competenceService.UpdateCompetence(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update competence")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Competence updated successfully")
}

// DeleteCompetence handles DELETE /api/admin/competences/{id}
// @Summary Delete a competence
// @Description Delete a competence; refused while any project still requires it
// @Tags competences
// @Produce json
// @Param id path int true "Competence ID"
// @Success 200 {object} handlers.messageResponse "Competence deleted successfully"
// @Failure 404 {object} handlers.errorResponse "Competence not found"
// @Failure 409 {object} handlers.errorResponse "Competence still in use"
// @Security ApiKeyAuth
// @Router /api/admin/competences/{id} [delete]
func (h *CompetenceHandler) DeleteCompetence(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid competence ID")
		return
	}

	if err := h.competenceService.DeleteCompetence(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete competence")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Competence deleted successfully")
}
