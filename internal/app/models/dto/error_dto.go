package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

// ErrorResponse is the uniform single-message error body: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// ValidationErrorResponse enumerates every failing field of a request:
// {"errors": [{"field": "...", "message": "..."}, ...]}
type ValidationErrorResponse struct {
	Errors []apperrors.FieldError `json:"errors"`
}

// NewValidationErrorResponse creates a field-enumerating error body
func NewValidationErrorResponse(fields []apperrors.FieldError) *ValidationErrorResponse {
	return &ValidationErrorResponse{Errors: fields}
}

// HandleValidationError converts a binding error into the field-enumerating
// validation body. Non-validator errors (malformed JSON, wrong types) map to
// a single "body" pseudo-field.
func HandleValidationError(err error) *ValidationErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationErrorResponse([]apperrors.FieldError{
			{Field: "body", Message: "Invalid request body"},
		})
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: formatValidationError(fe),
		})
	}
	return NewValidationErrorResponse(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := strings.ToLower(e.Field()[:1]) + e.Field()[1:]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "email":
		return "Please provide a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
