package services

import (
	"context"
	"io"
	"path"
	"path/filepath"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/gestionprojet/backend/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUserRepository is the interface that wraps user data access for
// self-service profile changes
type ProfileUserRepository interface {
	GetByCIN(ctx context.Context, cin string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, cin, passwordHash string) error
	UpdateImageURL(ctx context.Context, cin, imageURL string) error
}

// ProfileStorage is the interface that wraps profile image storage
type ProfileStorage interface {
	// Method Save writes the image bytes and returns the number written.
	Save(filename string, src io.Reader) (int64, error)
	// Method Remove deletes a stored image.
	Remove(filename string) error
	// Method URLPath returns the public URL path for a stored image.
	URLPath(filename string) string
}

// profileService implements self-service profile updates (password and
// profile image only)
type profileService struct {
	userRepo ProfileUserRepository
	storage  ProfileStorage
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo ProfileUserRepository, storage ProfileStorage, logger *zap.Logger) *profileService {
	return &profileService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetUserInfo returns the caller's own profile
func (s *profileService) GetUserInfo(ctx context.Context, cin string) (*models.User, error) {
	return s.userRepo.GetByCIN(ctx, cin)
}

// UpdateProfile applies the caller's password and/or image change. At least
// one of the two must be provided.
func (s *profileService) UpdateProfile(ctx context.Context, cin, password string, image io.Reader, imageFilename string) (*models.ProfileUser, error) {
	if password == "" && image == nil {
		return nil, models.ErrNoChanges
	}

	user, err := s.userRepo.GetByCIN(ctx, cin)
	if err != nil {
		return nil, err
	}

	if password != "" {
		if len(password) < 8 {
			return nil, models.NewValidationError("password must be at least 8 characters")
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePasswordHash(ctx, cin, string(passwordHash)); err != nil {
			return nil, err
		}
	}

	imageURL := user.ImageURL
	if image != nil {
		filename := storage.ProfileFileName(cin, filepath.Ext(imageFilename))
		if _, err := s.storage.Save(filename, image); err != nil {
			return nil, err
		}

		imageURL = s.storage.URLPath(filename)
		if err := s.userRepo.UpdateImageURL(ctx, cin, imageURL); err != nil {
			return nil, err
		}

		// Best-effort cleanup of the previous image; a leftover file is not
		// worth failing the update for
		if user.ImageURL != "" {
			if err := s.storage.Remove(path.Base(user.ImageURL)); err != nil {
				s.logger.Warn("failed to delete old profile image",
					zap.String("cin", cin),
					zap.String("image_url", user.ImageURL),
					zap.Error(err),
				)
			}
		}
	}

	return &models.ProfileUser{
		CIN:      user.CIN,
		Nom:      user.Nom,
		ImageURL: imageURL,
	}, nil
}
