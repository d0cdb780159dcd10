package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/repositories"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
	"github.com/miraihq/mirai-backend/internal/pkg/validation"
)

// UserService implements profile operations
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// GetProfile retrieves the current user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update and returns the fresh
// profile. An update with no fields is rejected.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	verrs := apperrors.NewValidationErrors()
	if req.Name != nil && len(strings.TrimSpace(*req.Name)) < validation.NameMinLength {
		verrs.Add("name", fmt.Sprintf("name must be at least %d characters", validation.NameMinLength))
	}
	if req.UserType != nil && !validation.IsValidUserType(*req.UserType) {
		verrs.Add("userType", fmt.Sprintf("userType must be one of: %s", strings.Join(validation.UserTypes, " ")))
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	update := &models.UserProfileUpdate{
		Name:        req.Name,
		CollegeName: req.CollegeName,
		Course:      req.Course,
		UserType:    req.UserType,
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Msg("Profile updated")
	return s.userRepo.GetByID(ctx, userID)
}
