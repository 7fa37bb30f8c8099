package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProjectService is the interface that wraps project management and the
// manager-assignment rules
type ProjectService interface {
	// Method CreateProject creates a project with its competence set.
	CreateProject(ctx context.Context, req *models.ProjectRequest) (*models.Project, error)
	// Method UpdateProject rewrites a project and replaces its competence set.
	UpdateProject(ctx context.Context, id int, req *models.ProjectRequest) error
	// Method GetProject returns a project with its competences.
	GetProject(ctx context.Context, id int) (*models.Project, error)
	// Method GetProjectsList returns all projects with their competences.
	GetProjectsList(ctx context.Context) ([]models.Project, error)
	// Method GetProjectCompetences returns a project's competences.
	GetProjectCompetences(ctx context.Context, id int) ([]models.Competence, error)
	// Method DeleteProject removes a project.
	DeleteProject(ctx context.Context, id int) error
	// Method AssignManager assigns a manager to a project.
	//
	// A *models.ManagerAssignedError is returned when the manager already
	// holds an assignment to another project.
	AssignManager(ctx context.Context, req *models.AssignManagerRequest) error
	// Method GetProjectManager returns the manager assigned to a project.
	GetProjectManager(ctx context.Context, projectID int) (*models.ProjectManagerDetails, error)
	// Method RemoveProjectManager removes a project's manager assignment.
	RemoveProjectManager(ctx context.Context, projectID int) error
}

// ProjectHandler handles project management HTTP requests
type ProjectHandler struct {
	BaseHandler
	projectService ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		projectService: projectService,
	}
}

// RegisterRoutes registers all project handler routes.
// Note: this assumes the router is already scoped to /api/admin and gated to
// the Manager role or above.
func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.AddProject)
		r.Get("/", h.GetProjectsList)
		r.Post("/assign-manager", h.AssignManager)
		r.Get("/{id}", h.GetProject)
		r.Put("/{id}", h.UpdateProject)
		r.Delete("/{id}", h.DeleteProject)
		r.Get("/{id}/competences", h.GetProjectCompetences)
		r.Get("/{id}/manager", h.GetProjectManager)
		r.Delete("/{id}/manager", h.RemoveProjectManager)
	})
}

// parseID extracts the numeric {id} path parameter
func (h *ProjectHandler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid project ID")
		return 0, false
	}
	return id, true
}

// addProjectResponse confirms a creation and carries the new project ID
type addProjectResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProjectID int    `json:"projectId"`
}

// AddProject handles POST /api/admin/projects
// @Summary Create a project
// @Description Create a project with its required competence set
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.ProjectRequest true "Project to create"
// @Success 201 {object} handlers.addProjectResponse "Project added successfully"
// @Failure 400 {object} handlers.errorResponse "Missing or malformed fields"
// @Security ApiKeyAuth
// @Router /api/admin/projects [post]
func (h *ProjectHandler) AddProject(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create project")
		return
	}

	h.RespondJSON(w, http.StatusCreated, addProjectResponse{
		Success:   true,
		Message:   "Project added successfully",
		ProjectID: project.ID,
	})
}

// GetProjectsList handles GET /api/admin/projects
// @Summary List projects
// @Description Get all projects with their competences, ordered by deadline
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Security ApiKeyAuth
// @Router /api/admin/projects [get]
func (h *ProjectHandler) GetProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetProjectsList(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to get projects list")
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/admin/projects/{id}
// @Summary Get a project
// @Description Get a project with its competences
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project"
// @Failure 404 {object} handlers.errorResponse "Project not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get project")
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// GetProjectCompetences handles GET /api/admin/projects/{id}/competences
// @Summary Get project competences
// @Description Get the competences required by a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} models.Competence "Competences"
// @Failure 404 {object} handlers.errorResponse "Project not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id}/competences [get]
func (h *ProjectHandler) GetProjectCompetences(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	competences, err := h.projectService.GetProjectCompetences(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get project competences")
		return
	}

	h.RespondJSON(w, http.StatusOK, competences)
}

// UpdateProject handles PUT /api/admin/projects/{id}
// @Summary Update a project
// @Description Update a project and replace its competence set in full
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body models.ProjectRequest true "Project fields"
// @Success 200 {object} handlers.messageResponse "Project updated successfully"
// @Failure 404 {object} handlers.errorResponse "Project not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.projectService.UpdateProject(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update project")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Project updated successfully")
}

// DeleteProject handles DELETE /api/admin/projects/{id}
// @Summary Delete a project
// @Description Delete a project; its competence links and manager assignment go with it
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} handlers.messageResponse "Project deleted successfully"
// @Failure 404 {object} handlers.errorResponse "Project not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to delete project")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Project deleted successfully")
}

// assignConflictResponse reports a manager already assigned elsewhere
type assignConflictResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ExistingProjectID int    `json:"existingProjectId"`
}

// AssignManager handles POST /api/admin/projects/assign-manager
// @Summary Assign a project manager
// @Description Assign a manager-role user to a project. A manager can hold at most one assignment; conflicts report the project currently held.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.AssignManagerRequest true "Assignment request"
// @Success 201 {object} handlers.messageResponse "Project manager assigned successfully"
// @Failure 400 {object} handlers.errorResponse "Target user is not a manager"
// @Failure 404 {object} handlers.errorResponse "Project or user not found"
// @Failure 409 {object} handlers.assignConflictResponse "Manager already assigned to another project"
// @Security ApiKeyAuth
// @Router /api/admin/projects/assign-manager [post]
func (h *ProjectHandler) AssignManager(w http.ResponseWriter, r *http.Request) {
	var req models.AssignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.projectService.AssignManager(r.Context(), &req); err != nil {
		// The conflict payload names the project so the client can offer to
		// free the manager first
		var assignedErr *models.ManagerAssignedError
		if errors.As(err, &assignedErr) {
			h.RespondJSON(w, http.StatusConflict, assignConflictResponse{
				Success:           false,
				Message:           assignedErr.Error(),
				ExistingProjectID: assignedErr.ProjectID,
			})
			return
		}

		h.RespondServiceError(w, err, "failed to assign project manager")
		return
	}

	h.RespondMessage(w, http.StatusCreated, "Project manager assigned successfully")
}

// GetProjectManager handles GET /api/admin/projects/{id}/manager
// @Summary Get a project's manager
// @Description Get the manager assigned to a project with the assignment date
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.ProjectManagerDetails "Assigned manager"
// @Failure 404 {object} handlers.errorResponse "No project manager assigned"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id}/manager [get]
func (h *ProjectHandler) GetProjectManager(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	manager, err := h.projectService.GetProjectManager(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get project manager")
		return
	}

	h.RespondJSON(w, http.StatusOK, manager)
}

// RemoveProjectManager handles DELETE /api/admin/projects/{id}/manager
// @Summary Remove a project's manager
// @Description Remove the manager assignment for a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} handlers.messageResponse "Project manager removed successfully"
// @Failure 404 {object} handlers.errorResponse "No project manager assigned"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id}/manager [delete]
func (h *ProjectHandler) RemoveProjectManager(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.projectService.RemoveProjectManager(r.Context(), id); err != nil {
		h.RespondServiceError(w, err, "failed to remove project manager")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Project manager removed successfully")
}
