package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockAdminUserRepository is a mock implementation of AdminUserRepository
type mockAdminUserRepository struct {
	user          *models.User
	users         []models.User
	getErr        error
	createErr     error
	updateErr     error
	deleteErr     error
	existsResult  bool
	existsErr     error
	takenResult   bool
	takenErr      error
	count         int
	countErr      error
	createdUser   *models.User
	deletedCIN    string
	updatedFields *models.UpdateUserRequest
}

func (m *mockAdminUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdUser = user
	return nil
}

func (m *mockAdminUserRepository) GetByCIN(ctx context.Context, cin string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockAdminUserRepository) ExistsByCINOrEmail(ctx context.Context, cin, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existsResult, nil
}

func (m *mockAdminUserRepository) EmailTakenByOther(ctx context.Context, email, cin string) (bool, error) {
	if m.takenErr != nil {
		return false, m.takenErr
	}
	return m.takenResult, nil
}

func (m *mockAdminUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users, nil
}

func (m *mockAdminUserRepository) Update(ctx context.Context, cin string, req *models.UpdateUserRequest) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedFields = req
	return nil
}

func (m *mockAdminUserRepository) Delete(ctx context.Context, cin string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedCIN = cin
	return nil
}

func (m *mockAdminUserRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

// mockStatsProjectRepository is a mock implementation of StatsProjectRepository
type mockStatsProjectRepository struct {
	count        int
	countErr     error
	statusCounts models.ProjectStatusCounts
	statusErr    error
}

func (m *mockStatsProjectRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockStatsProjectRepository) CountByStatus(ctx context.Context) (models.ProjectStatusCounts, error) {
	if m.statusErr != nil {
		return models.ProjectStatusCounts{}, m.statusErr
	}
	return m.statusCounts, nil
}

func validCreateUserRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		CIN:      "AB123456",
		Nom:      "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     models.RoleMember,
		Poste:    "Developer",
	}
}

func TestAdminService_CreateUser(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("success hashes the password", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.CreateUser(context.Background(), validCreateUserRequest())

		require.NoError(t, err)
		require.NotNil(t, userRepo.createdUser)
		assert.Equal(t, "AB123456", userRepo.createdUser.CIN)
		assert.NotEqual(t, "password123", userRepo.createdUser.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(userRepo.createdUser.PasswordHash), []byte("password123")))
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAdminService(&mockAdminUserRepository{}, &mockStatsProjectRepository{}, logger)

		req := validCreateUserRequest()
		req.Password = "short"
		err := svc.CreateUser(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewAdminService(&mockAdminUserRepository{}, &mockStatsProjectRepository{}, logger)

		req := validCreateUserRequest()
		req.Email = "not-an-email"
		err := svc.CreateUser(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := NewAdminService(&mockAdminUserRepository{}, &mockStatsProjectRepository{}, logger)

		req := validCreateUserRequest()
		req.Role = 42
		err := svc.CreateUser(context.Background(), req)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("duplicate cin or email", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{existsResult: true}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.CreateUser(context.Background(), validCreateUserRequest())

		assert.ErrorIs(t, err, models.ErrUserExists)
		assert.Nil(t, userRepo.createdUser)
	})
}

func TestAdminService_GetUsersList(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	userRepo := &mockAdminUserRepository{
		users: []models.User{
			{CIN: "AB123456", Nom: "Alice", Role: models.RoleMember},
			{CIN: "CD789012", Nom: "Bob", Role: models.RoleAdmin},
		},
	}
	svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

	users, err := svc.GetUsersList(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdminService_UpdateUser(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	validReq := func() *models.UpdateUserRequest {
		return &models.UpdateUserRequest{
			Nom:   "Updated Name",
			Email: "updated@example.com",
			Role:  models.RoleManager,
		}
	}

	t.Run("success", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{user: &models.User{CIN: "AB123456"}}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.UpdateUser(context.Background(), "AB123456", validReq())

		require.NoError(t, err)
		assert.Equal(t, "updated@example.com", userRepo.updatedFields.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{getErr: models.ErrUserNotFound}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.UpdateUser(context.Background(), "ZZ000000", validReq())

		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{
			user:        &models.User{CIN: "AB123456"},
			takenResult: true,
		}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.UpdateUser(context.Background(), "AB123456", validReq())

		assert.ErrorIs(t, err, models.ErrUserExists)
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("success", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{
			user: &models.User{CIN: "CD789012", Role: models.RoleMember},
		}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.DeleteUser(context.Background(), "AB123456", "CD789012")

		require.NoError(t, err)
		assert.Equal(t, "CD789012", userRepo.deletedCIN)
	})

	t.Run("cannot delete yourself", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.DeleteUser(context.Background(), "AB123456", "AB123456")

		assert.ErrorIs(t, err, models.ErrCannotDeleteSelf)
		assert.Empty(t, userRepo.deletedCIN)
	})

	t.Run("cannot delete an admin", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{
			user: &models.User{CIN: "CD789012", Role: models.RoleAdmin},
		}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.DeleteUser(context.Background(), "AB123456", "CD789012")

		assert.ErrorIs(t, err, models.ErrCannotDeleteAdmin)
		assert.Empty(t, userRepo.deletedCIN)
	})

	t.Run("user not found", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{getErr: models.ErrUserNotFound}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		err := svc.DeleteUser(context.Background(), "AB123456", "ZZ000000")

		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestAdminService_GetDashboardStats(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("success", func(t *testing.T) {
		userRepo := &mockAdminUserRepository{count: 12}
		projectRepo := &mockStatsProjectRepository{
			count:        8,
			statusCounts: models.ProjectStatusCounts{Pending: 2, InProgress: 3, Completed: 2, OnHold: 1},
		}
		svc := NewAdminService(userRepo, projectRepo, logger)

		stats, err := svc.GetDashboardStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 12, stats.TotalUsers)
		assert.Equal(t, 8, stats.TotalProjects)
		assert.Equal(t, 3, stats.ProjectStatus.InProgress)
	})

	t.Run("count error passes through", func(t *testing.T) {
		countErr := errors.New("database error")
		userRepo := &mockAdminUserRepository{countErr: countErr}
		svc := NewAdminService(userRepo, &mockStatsProjectRepository{}, logger)

		stats, err := svc.GetDashboardStats(context.Background())

		assert.ErrorIs(t, err, countErr)
		assert.Nil(t, stats)
	})
}
