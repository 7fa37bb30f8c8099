package services

import (
	"context"
	"errors"

	"github.com/gestionprojet/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminUserRepository is the interface that wraps user data access for admin
// user management
type AdminUserRepository interface {
	// Method Create inserts a new user into the database.
	Create(ctx context.Context, user *models.User) error
	// Method GetByCIN retrieves a user by CIN.
	//
	// If no user with such CIN exists, models.ErrUserNotFound is returned.
	GetByCIN(ctx context.Context, cin string) (*models.User, error)
	// Method ExistsByCINOrEmail checks if a user with the given CIN or email
	// already exists.
	ExistsByCINOrEmail(ctx context.Context, cin, email string) (bool, error)
	// Method EmailTakenByOther checks if the email belongs to a user other
	// than the one identified by cin.
	EmailTakenByOther(ctx context.Context, email, cin string) (bool, error)
	// Method GetAll retrieves all users without password hashes.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method Update merges the admin-managed fields of a user.
	Update(ctx context.Context, cin string, req *models.UpdateUserRequest) error
	// Method Delete removes a user by CIN.
	//
	// If no user with such CIN exists, models.ErrUserNotFound is returned.
	Delete(ctx context.Context, cin string) error
	// Method Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}

// StatsProjectRepository is the interface that wraps the project aggregates
// shown on the admin dashboard
type StatsProjectRepository interface {
	// Method Count returns the total number of projects.
	Count(ctx context.Context) (int, error)
	// Method CountByStatus returns the number of projects per status.
	CountByStatus(ctx context.Context) (models.ProjectStatusCounts, error)
}

// adminService implements admin user management and dashboard aggregates
type adminService struct {
	userRepo    AdminUserRepository
	projectRepo StatsProjectRepository
	logger      *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, projectRepo StatsProjectRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateUser creates a new user with a bcrypt-hashed password
func (s *adminService) CreateUser(ctx context.Context, req *models.CreateUserRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if !req.Role.Valid() {
		return models.NewValidationError("unknown role")
	}

	exists, err := s.userRepo.ExistsByCINOrEmail(ctx, req.CIN, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrUserExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		CIN:          req.CIN,
		Nom:          req.Nom,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
		Poste:        req.Poste,
		NumTele:      req.NumTele,
	}

	return s.userRepo.Create(ctx, user)
}

// GetUsersList returns all users without credential fields
func (s *adminService) GetUsersList(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateUser merges the provided fields into an existing user
func (s *adminService) UpdateUser(ctx context.Context, cin string, req *models.UpdateUserRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if !req.Role.Valid() {
		return models.NewValidationError("unknown role")
	}

	if _, err := s.userRepo.GetByCIN(ctx, cin); err != nil {
		return err
	}

	taken, err := s.userRepo.EmailTakenByOther(ctx, req.Email, cin)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrUserExists
	}

	return s.userRepo.Update(ctx, cin, req)
}

// DeleteUser removes a user. Deleting yourself and deleting admin accounts
// are both refused, no matter who asks.
func (s *adminService) DeleteUser(ctx context.Context, callerCIN, cin string) error {
	if callerCIN == cin {
		return models.ErrCannotDeleteSelf
	}

	user, err := s.userRepo.GetByCIN(ctx, cin)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return models.ErrCannotDeleteAdmin
	}

	if err := s.userRepo.Delete(ctx, cin); err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			s.logger.Error("failed to delete user", zap.String("cin", cin), zap.Error(err))
		}
		return err
	}

	return nil
}

// GetDashboardStats returns the aggregate counts for the admin dashboard
func (s *adminService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUsers:    totalUsers,
		TotalProjects: totalProjects,
		ProjectStatus: statusCounts,
	}, nil
}
