package models

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map these to HTTP status codes with errors.Is /
// errors.As; everything not listed here surfaces as an internal server error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this CIN or email already exists")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
	ErrCannotDeleteAdmin  = errors.New("cannot delete admin accounts")
	ErrProjectNotFound    = errors.New("project not found")
	ErrCompetenceNotFound = errors.New("competence not found")
	ErrCompetenceExists   = errors.New("a competence with this name already exists")
	ErrCompetenceInUse    = errors.New("cannot delete competence as it is being used by one or more projects")
	ErrAssignmentNotFound = errors.New("no project manager assigned")
	ErrNotAManager        = errors.New("only users with manager role can be assigned as project managers")
	ErrNoChanges          = errors.New("no changes provided")
)

// ValidationError marks a request that failed field validation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ManagerAssignedError reports that a manager already holds an assignment
// to another project. The conflicting project ID is part of the response so
// the caller can remove the old assignment first.
type ManagerAssignedError struct {
	ProjectID int
}

func (e *ManagerAssignedError) Error() string {
	return fmt.Sprintf("this manager is already assigned to project %d", e.ProjectID)
}
