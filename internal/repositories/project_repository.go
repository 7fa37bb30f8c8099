package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gestionprojet/backend/internal/models"
)

// projectRepository implements project data access, including the
// project-competence relation
type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{db: db}
}

// Create inserts a project and its competence relation in one transaction
func (r *projectRepository) Create(ctx context.Context, project *models.Project, competenceIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projets (nom_projet, description, delai, budget, statut)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		project.NomProjet,
		project.Description,
		project.Delai,
		project.Budget,
		project.Statut,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	project.ID = int(id)

	if err := insertCompetences(ctx, tx, project.ID, competenceIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Update rewrites a project and its full competence relation in one
// transaction. The relation is replaced wholesale (delete then reinsert)
// instead of diffed, which keeps retries consistent at the cost of extra
// writes.
func (r *projectRepository) Update(ctx context.Context, project *models.Project, competenceIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT * FROM projets WHERE id = ?)`, project.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check project existence: %w", err)
	}
	if !exists {
		return models.ErrProjectNotFound
	}

	query := `
		UPDATE projets
		SET nom_projet = ?, description = ?, delai = ?, budget = ?, statut = ?
		WHERE id = ?
	`

	_, err = tx.ExecContext(ctx, query,
		project.NomProjet,
		project.Description,
		project.Delai,
		project.Budget,
		project.Statut,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM projet_competence WHERE projet_id = ?`, project.ID); err != nil {
		return fmt.Errorf("failed to clear project competences: %w", err)
	}

	if err := insertCompetences(ctx, tx, project.ID, competenceIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// insertCompetences inserts the project-competence rows one by one
func insertCompetences(ctx context.Context, tx *sql.Tx, projectID int, competenceIDs []int) error {
	query := `INSERT INTO projet_competence (projet_id, competence_id) VALUES (?, ?)`

	for _, competenceID := range competenceIDs {
		if _, err := tx.ExecContext(ctx, query, projectID, competenceID); err != nil {
			return fmt.Errorf("failed to attach competence %d: %w", competenceID, err)
		}
	}

	return nil
}

// GetByID retrieves a project with its competences
func (r *projectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	query := `
		SELECT id, nom_projet, description, delai, budget, statut
		FROM projets
		WHERE id = ?
	`

	project := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.NomProjet,
		&project.Description,
		&project.Delai,
		&project.Budget,
		&project.Statut,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	competences, err := r.GetCompetences(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Competences = competences

	return project, nil
}

// GetAll retrieves all projects with their competences, ordered by deadline
func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, nom_projet, description, delai, budget, statut
		FROM projets
		ORDER BY delai ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	index := map[int]int{}
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.NomProjet, &project.Description, &project.Delai, &project.Budget, &project.Statut); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		project.Competences = []models.Competence{}
		index[project.ID] = len(projects)
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	// Attach competences with a single join query instead of one per project
	compQuery := `
		SELECT pc.projet_id, c.id, c.nom_competence
		FROM competences c
		INNER JOIN projet_competence pc ON c.id = pc.competence_id
	`

	compRows, err := r.db.QueryContext(ctx, compQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get project competences: %w", err)
	}
	defer compRows.Close()

	for compRows.Next() {
		var projectID int
		var competence models.Competence
		if err := compRows.Scan(&projectID, &competence.ID, &competence.NomCompetence); err != nil {
			return nil, fmt.Errorf("failed to scan project competence: %w", err)
		}
		if i, ok := index[projectID]; ok {
			projects[i].Competences = append(projects[i].Competences, competence)
		}
	}
	if err := compRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project competences: %w", err)
	}

	return projects, nil
}

// GetCompetences retrieves the competences attached to a project
func (r *projectRepository) GetCompetences(ctx context.Context, projectID int) ([]models.Competence, error) {
	query := `
		SELECT c.id, c.nom_competence
		FROM competences c
		INNER JOIN projet_competence pc ON c.id = pc.competence_id
		WHERE pc.projet_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project competences: %w", err)
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

// Exists checks if a project exists
func (r *projectRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM projets WHERE id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}

	return exists, nil
}

// Delete removes a project. Join rows and the manager assignment are removed
// by the foreign key cascade.
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM projets WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrProjectNotFound
	}

	return nil
}

// Count returns the total number of projects
func (r *projectRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}

// CountByStatus returns the number of projects per status
func (r *projectRepository) CountByStatus(ctx context.Context) (models.ProjectStatusCounts, error) {
	query := `
		SELECT
			COUNT(CASE WHEN statut = 'Pending' THEN 1 END),
			COUNT(CASE WHEN statut = 'In Progress' THEN 1 END),
			COUNT(CASE WHEN statut = 'Completed' THEN 1 END),
			COUNT(CASE WHEN statut = 'On Hold' THEN 1 END)
		FROM projets
	`

	var counts models.ProjectStatusCounts
	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.Pending,
		&counts.InProgress,
		&counts.Completed,
		&counts.OnHold,
	)
	if err != nil {
		return models.ProjectStatusCounts{}, fmt.Errorf("failed to count projects by status: %w", err)
	}

	return counts, nil
}
