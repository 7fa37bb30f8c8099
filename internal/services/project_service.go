package services

import (
	"context"
	"time"

	"github.com/gestionprojet/backend/internal/models"
	"go.uber.org/zap"
)

// delaiLayout is the wire format for project deadlines
const delaiLayout = "2006-01-02"

// ProjectRepository is the interface that wraps project data access
type ProjectRepository interface {
	// Method Create inserts a project and its competence relation in one
	// transaction, setting project.ID on success.
	Create(ctx context.Context, project *models.Project, competenceIDs []int) error
	// Method Update rewrites a project and its full competence relation in
	// one transaction.
	//
	// If no project with such ID exists, models.ErrProjectNotFound is
	// returned and nothing is written.
	Update(ctx context.Context, project *models.Project, competenceIDs []int) error
	// Method GetByID retrieves a project with its competences.
	GetByID(ctx context.Context, id int) (*models.Project, error)
	// Method GetAll retrieves all projects with their competences.
	GetAll(ctx context.Context) ([]models.Project, error)
	// Method GetCompetences retrieves the competences attached to a project.
	GetCompetences(ctx context.Context, projectID int) ([]models.Competence, error)
	// Method Exists checks if a project exists.
	Exists(ctx context.Context, id int) (bool, error)
	// Method Delete removes a project.
	Delete(ctx context.Context, id int) error
}

// AssignmentRepository is the interface that wraps the project-manager
// assignment store
type AssignmentRepository interface {
	// Method Assign records the manager assignment, replacing the project's
	// previous one.
	//
	// If the manager already holds an assignment to a different project, a
	// *models.ManagerAssignedError carrying the conflicting project ID is
	// returned.
	Assign(ctx context.Context, projectID int, managerCIN string) error
	// Method GetForProject retrieves the current assignment for a project.
	GetForProject(ctx context.Context, projectID int) (*models.ProjectManagerDetails, error)
	// Method Remove deletes the assignment for a project.
	Remove(ctx context.Context, projectID int) error
}

// ManagerUserRepository is the interface that wraps the user lookup needed
// for assignment validation
type ManagerUserRepository interface {
	GetByCIN(ctx context.Context, cin string) (*models.User, error)
}

// projectService implements project CRUD and the manager-assignment rules
type projectService struct {
	projectRepo    ProjectRepository
	assignmentRepo AssignmentRepository
	userRepo       ManagerUserRepository
	logger         *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo ProjectRepository,
	assignmentRepo AssignmentRepository,
	userRepo ManagerUserRepository,
	logger *zap.Logger,
) *projectService {
	return &projectService{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// buildProject validates the request and converts it into a project row
func buildProject(req *models.ProjectRequest) (*models.Project, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !req.Statut.Valid() {
		return nil, models.NewValidationError("statut must be one of: Pending, In Progress, Completed, On Hold")
	}

	delai, err := time.Parse(delaiLayout, req.Delai)
	if err != nil {
		return nil, models.NewValidationError("delai must be a date in YYYY-MM-DD format")
	}

	return &models.Project{
		NomProjet:   req.NomProjet,
		Description: req.Description,
		Delai:       delai,
		Budget:      req.Budget,
		Statut:      req.Statut,
	}, nil
}

// CreateProject creates a project together with its competence set
func (s *projectService) CreateProject(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	project, err := buildProject(req)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project, req.CompetenceIDs); err != nil {
		s.logger.Error("failed to create project", zap.String("nom_projet", req.NomProjet), zap.Error(err))
		return nil, err
	}

	competences, err := s.projectRepo.GetCompetences(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.Competences = competences

	return project, nil
}

// UpdateProject rewrites a project and replaces its competence set
func (s *projectService) UpdateProject(ctx context.Context, id int, req *models.ProjectRequest) error {
	project, err := buildProject(req)
	if err != nil {
		return err
	}
	project.ID = id

	return s.projectRepo.Update(ctx, project, req.CompetenceIDs)
}

// GetProject returns a project with its competences
func (s *projectService) GetProject(ctx context.Context, id int) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// GetProjectsList returns all projects with their competences
func (s *projectService) GetProjectsList(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// GetProjectCompetences returns the competences attached to a project
func (s *projectService) GetProjectCompetences(ctx context.Context, id int) ([]models.Competence, error) {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrProjectNotFound
	}

	return s.projectRepo.GetCompetences(ctx, id)
}

// DeleteProject removes a project
func (s *projectService) DeleteProject(ctx context.Context, id int) error {
	return s.projectRepo.Delete(ctx, id)
}

// AssignManager assigns a manager to a project, enforcing that the target
// user holds the Manager role and is not already assigned elsewhere
func (s *projectService) AssignManager(ctx context.Context, req *models.AssignManagerRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	exists, err := s.projectRepo.Exists(ctx, req.ProjetID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrProjectNotFound
	}

	user, err := s.userRepo.GetByCIN(ctx, req.ManagerCIN)
	if err != nil {
		return err
	}
	if user.Role != models.RoleManager {
		return models.ErrNotAManager
	}

	return s.assignmentRepo.Assign(ctx, req.ProjetID, req.ManagerCIN)
}

// GetProjectManager returns the manager assigned to a project
func (s *projectService) GetProjectManager(ctx context.Context, projectID int) (*models.ProjectManagerDetails, error) {
	return s.assignmentRepo.GetForProject(ctx, projectID)
}

// RemoveProjectManager removes the manager assignment for a project
func (s *projectService) RemoveProjectManager(ctx context.Context, projectID int) error {
	return s.assignmentRepo.Remove(ctx, projectID)
}
