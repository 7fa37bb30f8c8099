package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gestionprojet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupProjectManagerTestRepository creates a project manager repository with a mock database
func setupProjectManagerTestRepository(t *testing.T) (*projectManagerRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProjectManagerRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewProjectManagerRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewProjectManagerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestProjectManagerRepository_Assign(t *testing.T) {
	t.Run("first assignment succeeds", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT projet_id FROM projet_managers WHERE manager_cin = \?`).
			WithArgs("AB123456").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO projet_managers`).
			WithArgs(7, "AB123456").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Assign(context.Background(), 7, "AB123456")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("re-assigning the same project succeeds", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT projet_id FROM projet_managers WHERE manager_cin = \?`).
			WithArgs("AB123456").
			WillReturnRows(sqlmock.NewRows([]string{"projet_id"}).AddRow(7))
		mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO projet_managers`).
			WithArgs(7, "AB123456").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := repo.Assign(context.Background(), 7, "AB123456")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("manager held by another project conflicts", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT projet_id FROM projet_managers WHERE manager_cin = \?`).
			WithArgs("AB123456").
			WillReturnRows(sqlmock.NewRows([]string{"projet_id"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.Assign(context.Background(), 7, "AB123456")

		var assignedErr *models.ManagerAssignedError
		require.ErrorAs(t, err, &assignedErr)
		assert.Equal(t, 3, assignedErr.ProjectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replacing the project's previous manager", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT projet_id FROM projet_managers WHERE manager_cin = \?`).
			WithArgs("NEW00001").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO projet_managers`).
			WithArgs(7, "NEW00001").
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		err := repo.Assign(context.Background(), 7, "NEW00001")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT projet_id FROM projet_managers WHERE manager_cin = \?`).
			WithArgs("AB123456").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO projet_managers`).
			WithArgs(7, "AB123456").
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.Assign(context.Background(), 7, "AB123456")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectManagerRepository_GetForProject(t *testing.T) {
	columns := []string{"cin", "nom", "email", "role", "poste", "num_tele", "image_url", "date_assignation"}
	assignedAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow("AB123456", "Manager Name", "manager@example.com", models.RoleManager, "Chef de projet", nil, nil, assignedAt)
		mock.ExpectQuery(`SELECT u.cin, u.nom, u.email, u.role`).
			WithArgs(7).
			WillReturnRows(rows)

		details, err := repo.GetForProject(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "AB123456", details.CIN)
		assert.Equal(t, models.RoleManager, details.Role)
		assert.Equal(t, "Chef de projet", details.Poste)
		assert.Equal(t, assignedAt, details.DateAssignation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no assignment", func(t *testing.T) {
		repo, mock, cleanup := setupProjectManagerTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT u.cin, u.nom, u.email, u.role`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		details, err := repo.GetForProject(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrAssignmentNotFound)
		assert.Nil(t, details)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectManagerRepository_Remove(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no assignment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM projet_managers WHERE projet_id = \?`).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrAssignmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProjectManagerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Remove(context.Background(), 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
