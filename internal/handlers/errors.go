package handlers

import (
	"errors"
	"net/http"

	"github.com/gestionprojet/backend/internal/models"
)

// statusForError maps domain errors to HTTP status codes. Anything not
// recognized here is an internal server error.
func statusForError(err error) int {
	var validationErr *models.ValidationError
	var assignedErr *models.ManagerAssignedError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, models.ErrNoChanges),
		errors.Is(err, models.ErrNotAManager):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrCannotDeleteSelf),
		errors.Is(err, models.ErrCannotDeleteAdmin):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProjectNotFound),
		errors.Is(err, models.ErrCompetenceNotFound),
		errors.Is(err, models.ErrAssignmentNotFound):
		return http.StatusNotFound
	case errors.As(err, &assignedErr),
		errors.Is(err, models.ErrUserExists),
		errors.Is(err, models.ErrCompetenceExists),
		errors.Is(err, models.ErrCompetenceInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
