package services

import (
	"context"
	"testing"
	"time"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProjectRepository is a mock implementation of ProjectRepository
type mockProjectRepository struct {
	project        *models.Project
	projects       []models.Project
	competences    []models.Competence
	exists         bool
	err            error
	createdProject *models.Project
	createdIDs     []int
	updatedProject *models.Project
	updatedIDs     []int
	deletedID      int
}

func (m *mockProjectRepository) Create(ctx context.Context, project *models.Project, competenceIDs []int) error {
	if m.err != nil {
		return m.err
	}
	project.ID = 42
	m.createdProject = project
	m.createdIDs = competenceIDs
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, project *models.Project, competenceIDs []int) error {
	if m.err != nil {
		return m.err
	}
	m.updatedProject = project
	m.updatedIDs = competenceIDs
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockProjectRepository) GetCompetences(ctx context.Context, projectID int) ([]models.Competence, error) {
	return m.competences, nil
}

func (m *mockProjectRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

// mockAssignmentRepository is a mock implementation of AssignmentRepository
type mockAssignmentRepository struct {
	details     *models.ProjectManagerDetails
	err         error
	assignedID  int
	assignedCIN string
	removedID   int
}

func (m *mockAssignmentRepository) Assign(ctx context.Context, projectID int, managerCIN string) error {
	if m.err != nil {
		return m.err
	}
	m.assignedID = projectID
	m.assignedCIN = managerCIN
	return nil
}

func (m *mockAssignmentRepository) GetForProject(ctx context.Context, projectID int) (*models.ProjectManagerDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

func (m *mockAssignmentRepository) Remove(ctx context.Context, projectID int) error {
	if m.err != nil {
		return m.err
	}
	m.removedID = projectID
	return nil
}

// mockManagerUserRepository is a mock implementation of ManagerUserRepository
type mockManagerUserRepository struct {
	user *models.User
	err  error
}

func (m *mockManagerUserRepository) GetByCIN(ctx context.Context, cin string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func validProjectRequest() *models.ProjectRequest {
	return &models.ProjectRequest{
		NomProjet:     "Refonte intranet",
		Description:   "Migration du portail interne",
		Delai:         "2026-12-31",
		Budget:        50000,
		Statut:        models.StatusPending,
		CompetenceIDs: []int{1, 3},
	}
}

func newTestProjectService(
	projectRepo *mockProjectRepository,
	assignmentRepo *mockAssignmentRepository,
	userRepo *mockManagerUserRepository,
) *projectService {
	logger, _ := zap.NewDevelopment()
	return NewProjectService(projectRepo, assignmentRepo, userRepo, logger)
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Run("success parses the deadline and attaches competences", func(t *testing.T) {
		projectRepo := &mockProjectRepository{
			competences: []models.Competence{{ID: 1, NomCompetence: "Go"}, {ID: 3, NomCompetence: "MySQL"}},
		}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		project, err := svc.CreateProject(context.Background(), validProjectRequest())

		require.NoError(t, err)
		assert.Equal(t, 42, project.ID)
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), project.Delai)
		assert.Equal(t, []int{1, 3}, projectRepo.createdIDs)
		assert.Len(t, project.Competences, 2)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		_, err := svc.CreateProject(context.Background(), &models.ProjectRequest{})

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("empty competence list", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		req := validProjectRequest()
		req.CompetenceIDs = []int{}
		_, err := svc.CreateProject(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		req := validProjectRequest()
		req.Statut = "Cancelled"
		_, err := svc.CreateProject(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("malformed deadline", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		req := validProjectRequest()
		req.Delai = "31/12/2026"
		_, err := svc.CreateProject(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("negative budget", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		req := validProjectRequest()
		req.Budget = -1
		_, err := svc.CreateProject(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	t.Run("success carries the target ID", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.UpdateProject(context.Background(), 7, validProjectRequest())

		require.NoError(t, err)
		assert.Equal(t, 7, projectRepo.updatedProject.ID)
		assert.Equal(t, []int{1, 3}, projectRepo.updatedIDs)
	})

	t.Run("project not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{err: models.ErrProjectNotFound}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.UpdateProject(context.Background(), 999, validProjectRequest())

		assert.ErrorIs(t, err, models.ErrProjectNotFound)
	})
}

func TestProjectService_GetProjectCompetences(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		projectRepo := &mockProjectRepository{
			exists:      true,
			competences: []models.Competence{{ID: 1, NomCompetence: "Go"}},
		}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		competences, err := svc.GetProjectCompetences(context.Background(), 7)

		require.NoError(t, err)
		assert.Len(t, competences, 1)
	})

	t.Run("project not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: false}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		competences, err := svc.GetProjectCompetences(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrProjectNotFound)
		assert.Nil(t, competences)
	})
}

func TestProjectService_AssignManager(t *testing.T) {
	validReq := func() *models.AssignManagerRequest {
		return &models.AssignManagerRequest{ProjetID: 7, ManagerCIN: "AB123456"}
	}

	t.Run("success", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: true}
		assignmentRepo := &mockAssignmentRepository{}
		userRepo := &mockManagerUserRepository{user: &models.User{CIN: "AB123456", Role: models.RoleManager}}
		svc := newTestProjectService(projectRepo, assignmentRepo, userRepo)

		err := svc.AssignManager(context.Background(), validReq())

		require.NoError(t, err)
		assert.Equal(t, 7, assignmentRepo.assignedID)
		assert.Equal(t, "AB123456", assignmentRepo.assignedCIN)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestProjectService(&mockProjectRepository{}, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.AssignManager(context.Background(), &models.AssignManagerRequest{})

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("project not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: false}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.AssignManager(context.Background(), validReq())

		assert.ErrorIs(t, err, models.ErrProjectNotFound)
	})

	t.Run("user not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: true}
		userRepo := &mockManagerUserRepository{err: models.ErrUserNotFound}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, userRepo)

		err := svc.AssignManager(context.Background(), validReq())

		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("target user is not a manager", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: true}
		assignmentRepo := &mockAssignmentRepository{}
		userRepo := &mockManagerUserRepository{user: &models.User{CIN: "AB123456", Role: models.RoleMember}}
		svc := newTestProjectService(projectRepo, assignmentRepo, userRepo)

		err := svc.AssignManager(context.Background(), validReq())

		assert.ErrorIs(t, err, models.ErrNotAManager)
		assert.Zero(t, assignmentRepo.assignedID)
	})

	t.Run("manager already assigned elsewhere", func(t *testing.T) {
		projectRepo := &mockProjectRepository{exists: true}
		assignmentRepo := &mockAssignmentRepository{err: &models.ManagerAssignedError{ProjectID: 3}}
		userRepo := &mockManagerUserRepository{user: &models.User{CIN: "AB123456", Role: models.RoleManager}}
		svc := newTestProjectService(projectRepo, assignmentRepo, userRepo)

		err := svc.AssignManager(context.Background(), validReq())

		var assignedErr *models.ManagerAssignedError
		require.ErrorAs(t, err, &assignedErr)
		assert.Equal(t, 3, assignedErr.ProjectID)
	})
}

func TestProjectService_GetProjectManager(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{
			details: &models.ProjectManagerDetails{CIN: "AB123456", Nom: "Manager"},
		}
		svc := newTestProjectService(&mockProjectRepository{}, assignmentRepo, &mockManagerUserRepository{})

		details, err := svc.GetProjectManager(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "AB123456", details.CIN)
	})

	t.Run("no assignment", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{err: models.ErrAssignmentNotFound}
		svc := newTestProjectService(&mockProjectRepository{}, assignmentRepo, &mockManagerUserRepository{})

		details, err := svc.GetProjectManager(context.Background(), 7)

		assert.ErrorIs(t, err, models.ErrAssignmentNotFound)
		assert.Nil(t, details)
	})
}

func TestProjectService_RemoveProjectManager(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{}
		svc := newTestProjectService(&mockProjectRepository{}, assignmentRepo, &mockManagerUserRepository{})

		err := svc.RemoveProjectManager(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, 7, assignmentRepo.removedID)
	})

	t.Run("no assignment", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{err: models.ErrAssignmentNotFound}
		svc := newTestProjectService(&mockProjectRepository{}, assignmentRepo, &mockManagerUserRepository{})

		err := svc.RemoveProjectManager(context.Background(), 7)

		assert.ErrorIs(t, err, models.ErrAssignmentNotFound)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.DeleteProject(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, 7, projectRepo.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{err: models.ErrProjectNotFound}
		svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

		err := svc.DeleteProject(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrProjectNotFound)
	})
}

func TestProjectService_GetProjectsList(t *testing.T) {
	projectRepo := &mockProjectRepository{
		projects: []models.Project{{ID: 1, NomProjet: "Projet A"}},
	}
	svc := newTestProjectService(projectRepo, &mockAssignmentRepository{}, &mockManagerUserRepository{})

	projects, err := svc.GetProjectsList(context.Background())

	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
