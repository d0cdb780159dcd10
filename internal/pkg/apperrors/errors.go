package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionRequired    = errors.New("authentication required")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Course errors
	ErrCourseNotFound = errors.New("course not found")

	// Mentor errors
	ErrMentorNotFound = errors.New("mentor not found")
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed field of a request so the
// response can enumerate all of them, not just the first.
type ValidationErrors struct {
	Fields []FieldError
}

// NewValidationErrors creates an empty validation error collector
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make([]FieldError, 0)}
}

// Add appends a failed field
func (v *ValidationErrors) Add(field, message string) *ValidationErrors {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
	return v
}

// HasErrors reports whether any field failed
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold for collected errors
func (v *ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}
