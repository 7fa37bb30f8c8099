package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// validate is shared across services; validator.Validate caches struct
// metadata and is safe for concurrent use
var validate = validator.New()

// validateStruct runs tag validation on a request struct and converts
// failures into a single domain ValidationError
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return models.NewValidationError("%s", strings.Join(msgs, "; "))
	}

	return err
}

// fieldError converts a single validation failure into a human-readable message
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
