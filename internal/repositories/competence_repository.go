package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gestionprojet/backend/internal/models"
)

// competenceRepository implements competence data access
type competenceRepository struct {
	db *sql.DB
}

// NewCompetenceRepository creates a new competence repository
func NewCompetenceRepository(db *sql.DB) *competenceRepository {
	return &competenceRepository{db: db}
}

// Create inserts a new competence and returns its ID
func (r *competenceRepository) Create(ctx context.Context, nomCompetence string) (int, error) {
	query := `INSERT INTO competences (nom_competence) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, nomCompetence)
	if err != nil {
		return 0, fmt.Errorf("failed to create competence: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// GetByID retrieves a competence by ID
func (r *competenceRepository) GetByID(ctx context.Context, id int) (*models.Competence, error) {
	query := `SELECT id, nom_competence FROM competences WHERE id = ?`

	competence := &models.Competence{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&competence.ID, &competence.NomCompetence)

	if err == sql.ErrNoRows {
		return nil, models.ErrCompetenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get competence: %w", err)
	}

	return competence, nil
}

// GetAll retrieves all competences ordered by name
func (r *competenceRepository) GetAll(ctx context.Context) ([]models.Competence, error) {
	query := `SELECT id, nom_competence FROM competences ORDER BY nom_competence ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get competences: %w", err)
	}
	defer rows.Close()

	competences := []models.Competence{}
	for rows.Next() {
		var competence models.Competence
		if err := rows.Scan(&competence.ID, &competence.NomCompetence); err != nil {
			return nil, fmt.Errorf("failed to scan competence: %w", err)
		}
		competences = append(competences, competence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate competences: %w", err)
	}

	return competences, nil
}

// ExistsByName checks if a competence with the given name exists
func (r *competenceRepository) ExistsByName(ctx context.Context, nomCompetence string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM competences WHERE nom_competence = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, nomCompetence).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check competence name: %w", err)
	}

	return exists, nil
}

// NameTakenByOther checks if the name belongs to a competence other than id
func (r *competenceRepository) NameTakenByOther(ctx context.Context, nomCompetence string, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM competences WHERE nom_competence = ? AND id != ?)`

	var taken bool
	err := r.db.QueryRowContext(ctx, query, nomCompetence, id).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check competence name: %w", err)
	}

	return taken, nil
}

// Update renames a competence
func (r *competenceRepository) Update(ctx context.Context, id int, nomCompetence string) error {
	query := `UPDATE competences SET nom_competence = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, nomCompetence, id); err != nil {
		return fmt.Errorf("failed to update competence: %w", err)
	}

	return nil
}

// Delete removes a competence unless any project still references it.
// The reference check and the deletion run in one transaction so a project
// cannot attach the competence between the check and the delete.
func (r *competenceRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT * FROM competences WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check competence existence: %w", err)
	}
	if !exists {
		return models.ErrCompetenceNotFound
	}

	var refs int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projet_competence WHERE competence_id = ?`, id).Scan(&refs)
	if err != nil {
		return fmt.Errorf("failed to count competence references: %w", err)
	}
	if refs > 0 {
		return models.ErrCompetenceInUse
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM competences WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete competence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
