package services

import (
	"errors"
	"fmt"
)

// Errors shared across services. Each maps to one error kind at the HTTP
// boundary: forbidden, validation, not-found or conflict.
var (
	ErrForbidden = errors.New("insufficient role for this action")
)

// ValidationError reports a single field-level input violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
