package store

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGroupNameTaken     = errors.New("group name already exists")
)

// ValidationError reports bad or missing input, rejected before any
// mutation happens.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

const maxNameLength = 100

var namePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// validateName enforces the shared naming rule for datasets and
// dashboards: 1-100 chars from [A-Za-z0-9 _-].
func validateName(field, name string) error {
	if name == "" {
		return validationErr(field, "name is required")
	}
	if len(name) > maxNameLength {
		return validationErr(field, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if !namePattern.MatchString(name) {
		return validationErr(field, "name may only contain letters, digits, spaces, hyphens and underscores")
	}
	return nil
}
