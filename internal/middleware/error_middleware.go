package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
	"github.com/miraihq/mirai-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to the API's error bodies.
// Validation failures enumerate every field; everything else is a
// single {"error": "..."} message.
func HandleAPIError(c *gin.Context, err error) {
	var verrs *apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(400, dto.NewValidationErrorResponse(verrs.Fields))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("User already exists with this email"))
	case errors.Is(err, apperrors.ErrNoFieldsToUpdate):
		c.JSON(400, dto.NewErrorResponse("No fields to update"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse("Validation failed"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrSessionRequired):
		c.JSON(401, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrMentorNotFound):
		c.JSON(404, dto.NewErrorResponse("Mentor not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse("Resource not found"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
	}
}
