package services

import (
	"context"

	"github.com/gestionprojet/backend/internal/models"
)

// CompetenceRepository is the interface that wraps competence data access
type CompetenceRepository interface {
	// Method Create inserts a new competence and returns its ID.
	Create(ctx context.Context, nomCompetence string) (int, error)
	// Method GetByID retrieves a competence by ID.
	//
	// If no competence with such ID exists, models.ErrCompetenceNotFound is
	// returned.
	GetByID(ctx context.Context, id int) (*models.Competence, error)
	// Method GetAll retrieves all competences ordered by name.
	GetAll(ctx context.Context) ([]models.Competence, error)
	// Method ExistsByName checks if a competence with the given name exists.
	ExistsByName(ctx context.Context, nomCompetence string) (bool, error)
	// Method NameTakenByOther checks if the name belongs to another competence.
	NameTakenByOther(ctx context.Context, nomCompetence string, id int) (bool, error)
	// Method Update renames a competence.
	Update(ctx context.Context, id int, nomCompetence string) error
	// Method Delete removes a competence.
	//
	// models.ErrCompetenceInUse is returned while any project references the
	// competence; the check and the delete run in one transaction.
	Delete(ctx context.Context, id int) error
}

// competenceService implements competence management
type competenceService struct {
	competenceRepo CompetenceRepository
}

// NewCompetenceService creates a new competence service
func NewCompetenceService(competenceRepo CompetenceRepository) *competenceService {
	return &competenceService{competenceRepo: competenceRepo}
}

// CreateCompetence creates a new competence with a unique name
func (s *competenceService) CreateCompetence(ctx context.Context, req *models.CompetenceRequest) (int, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	exists, err := s.competenceRepo.ExistsByName(ctx, req.NomCompetence)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, models.ErrCompetenceExists
	}

	return s.competenceRepo.Create(ctx, req.NomCompetence)
}

// GetCompetencesList returns all competences
func (s *competenceService) GetCompetencesList(ctx context.Context) ([]models.Competence, error) {
	return s.competenceRepo.GetAll(ctx)
}

// UpdateCompetence renames an existing competence
func (s *competenceService) UpdateCompetence(ctx context.Context, id int, req *models.CompetenceRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	if _, err := s.competenceRepo.GetByID(ctx, id); err != nil {
		return err
	}

	taken, err := s.competenceRepo.NameTakenByOther(ctx, req.NomCompetence, id)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrCompetenceExists
	}

	return s.competenceRepo.Update(ctx, id, req.NomCompetence)
}

// DeleteCompetence removes a competence unless a project still references it
func (s *competenceService) DeleteCompetence(ctx context.Context, id int) error {
	return s.competenceRepo.Delete(ctx, id)
}
