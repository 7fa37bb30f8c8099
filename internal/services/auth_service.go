package services

import (
	"context"
	"errors"

	"github.com/gestionprojet/backend/internal/auth/service"
	"github.com/gestionprojet/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserRepository is the interface that wraps user data access needed for
// authentication
type AuthUserRepository interface {
	// Method GetByCIN retrieves a user by CIN.
	//
	// If no user with such CIN exists, models.ErrUserNotFound is returned
	// together with "nil" value.
	GetByCIN(ctx context.Context, cin string) (*models.User, error)
}

// authService implements login and token verification
type authService struct {
	userRepo       AuthUserRepository
	tokenGenerator *service.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo AuthUserRepository, tokenGenerator *service.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login authenticates a user by CIN, password, and requested role, and
// returns a signed token with the user's public profile.
// A missing user, a role mismatch, and a wrong password are deliberately
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	if err := validateStruct(req); err != nil {
		return "", nil, err
	}
	if !req.Role.Valid() {
		return "", nil, models.NewValidationError("unknown role")
	}

	user, err := s.userRepo.GetByCIN(ctx, req.CIN)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Role != req.Role {
		return "", nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user.CIN, user.Role)
	if err != nil {
		s.logger.Error("failed to generate token", zap.String("cin", user.CIN), zap.Error(err))
		return "", nil, err
	}

	return token, user, nil
}
