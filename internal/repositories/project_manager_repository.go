package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gestionprojet/backend/internal/models"
)

// projectManagerRepository implements the project-manager assignment store.
// The table carries UNIQUE constraints on both projet_id and manager_cin, so
// the at-most-one-assignment invariants hold even if two transactions race.
type projectManagerRepository struct {
	db *sql.DB
}

// NewProjectManagerRepository creates a new project manager repository
func NewProjectManagerRepository(db *sql.DB) *projectManagerRepository {
	return &projectManagerRepository{db: db}
}

// Assign records managerCIN as the manager of projectID. The conflict check,
// the removal of the project's previous assignment, and the insert run in a
// single transaction.
//
// A manager already assigned to a different project is a conflict the caller
// must resolve by removing the old assignment first; re-assigning a manager
// to the project they already hold succeeds and refreshes the assignment.
func (r *projectManagerRepository) Assign(ctx context.Context, projectID int, managerCIN string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingProjectID int
	err = tx.QueryRowContext(ctx,
		`SELECT projet_id FROM projet_managers WHERE manager_cin = ?`,
		managerCIN,
	).Scan(&existingProjectID)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if err == nil && existingProjectID != projectID {
		return &models.ManagerAssignedError{ProjectID: existingProjectID}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM projet_managers WHERE projet_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to remove previous assignment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO projet_managers (projet_id, manager_cin) VALUES (?, ?)`,
		projectID, managerCIN,
	); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetForProject retrieves the current assignment for a project, joined with
// the manager's profile
func (r *projectManagerRepository) GetForProject(ctx context.Context, projectID int) (*models.ProjectManagerDetails, error) {
	query := `
		SELECT u.cin, u.nom, u.email, u.role, u.poste, u.num_tele, u.image_url, pm.date_assignation
		FROM projet_managers pm
		INNER JOIN users u ON pm.manager_cin = u.cin
		WHERE pm.projet_id = ?
	`

	details := &models.ProjectManagerDetails{}
	var poste, numTele, imageURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&details.CIN,
		&details.Nom,
		&details.Email,
		&details.Role,
		&poste,
		&numTele,
		&imageURL,
		&details.DateAssignation,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project manager: %w", err)
	}

	details.Poste = poste.String
	details.NumTele = numTele.String
	details.ImageURL = imageURL.String
	return details, nil
}

// Remove deletes the assignment for a project
func (r *projectManagerRepository) Remove(ctx context.Context, projectID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projet_managers WHERE projet_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrAssignmentNotFound
	}

	return nil
}
