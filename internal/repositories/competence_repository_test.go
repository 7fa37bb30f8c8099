package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gestionprojet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCompetenceTestRepository creates a competence repository with a mock database
func setupCompetenceTestRepository(t *testing.T) (*competenceRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCompetenceRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCompetenceRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCompetenceRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCompetenceRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO competences`).
					WithArgs("Go").
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			expectedID: 5,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO competences`).
					WithArgs("Go").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "error getting last insert id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO competences`).
					WithArgs("Go").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("last insert id error")))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCompetenceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			id, err := repo.Create(context.Background(), "Go")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompetenceRepository_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupCompetenceTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "nom_competence"}).AddRow(5, "Go")
		mock.ExpectQuery(`SELECT id, nom_competence FROM competences WHERE id = \?`).
			WithArgs(5).
			WillReturnRows(rows)

		competence, err := repo.GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, &models.Competence{ID: 5, NomCompetence: "Go"}, competence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupCompetenceTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT id, nom_competence FROM competences WHERE id = \?`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		competence, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrCompetenceNotFound)
		assert.Nil(t, competence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompetenceRepository_GetAll(t *testing.T) {
	repo, mock, cleanup := setupCompetenceTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "nom_competence"}).
		AddRow(3, "Docker").
		AddRow(1, "Go")
	mock.ExpectQuery(`SELECT id, nom_competence FROM competences ORDER BY nom_competence ASC`).
		WillReturnRows(rows)

	competences, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, competences, 2)
	assert.Equal(t, "Docker", competences[0].NomCompetence)
	assert.Equal(t, "Go", competences[1].NomCompetence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetenceRepository_ExistsByName(t *testing.T) {
	repo, mock, cleanup := setupCompetenceTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Go").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByName(context.Background(), "Go")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetenceRepository_NameTakenByOther(t *testing.T) {
	repo, mock, cleanup := setupCompetenceTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Go", 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	taken, err := repo.NameTakenByOther(context.Background(), "Go", 5)

	assert.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetenceRepository_Update(t *testing.T) {
	repo, mock, cleanup := setupCompetenceTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE competences SET nom_competence = \? WHERE id = \?`).
		WithArgs("Golang", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 5, "Golang")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetenceRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projet_competence`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`DELETE FROM competences WHERE id = \?`).
					WithArgs(5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			expectedError: models.ErrCompetenceNotFound,
		},
		{
			name: "still referenced by a project",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projet_competence`).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectRollback()
			},
			expectedError: models.ErrCompetenceInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCompetenceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
