package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/repositories"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
	"github.com/miraihq/mirai-backend/internal/pkg/auth"
	"github.com/miraihq/mirai-backend/internal/pkg/oauth"
	"github.com/miraihq/mirai-backend/internal/pkg/validation"
)

// AuthService implements identity operations over the user repository
type AuthService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// SignUp registers a local account. Every failing field is collected so
// the caller can report all of them at once.
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	verrs := apperrors.NewValidationErrors()

	name := strings.TrimSpace(req.Name)
	if len(name) < validation.NameMinLength {
		verrs.Add("name", fmt.Sprintf("name must be at least %d characters", validation.NameMinLength))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		verrs.Add("email", "Please provide a valid email")
	}
	if len(req.Password) < validation.PasswordMinLength {
		verrs.Add("password", fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	// userType is free text at registration; the closed set is only
	// enforced on profile updates.
	userType := req.UserType
	if userType == "" {
		userType = "student"
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    hashed,
		UserType:    userType,
		CollegeName: optional(req.CollegeName),
		Course:      optional(req.Course),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Str("email", email).Msg("User registered")
	return s.userRepo.GetByID(ctx, id)
}

// SignIn authenticates a local account. Unknown emails, OAuth-only
// accounts and wrong passwords all fail with the same error so the
// response never reveals which part was wrong.
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasLocalPassword() {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User signed in")
	return user, nil
}

// SignInWithGoogle resolves a Google profile to a local user. A profile
// seen before maps to its linked account; a known email gets the Google
// identity attached; anything else becomes a fresh account.
func (s *AuthService) SignInWithGoogle(ctx context.Context, profile *oauth.GoogleUser) (*models.User, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, profile.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))
	user, err = s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if err := s.userRepo.LinkGoogleID(ctx, user.ID, profile.ID); err != nil {
			return nil, err
		}
		s.logger.Info().Int64("userId", user.ID).Msg("Linked Google identity to existing account")
		return s.userRepo.GetByID(ctx, user.ID)
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	googleID := profile.ID
	name := profile.Name
	if name == "" {
		name = email
	}
	id, err := s.userRepo.Create(ctx, &models.User{
		GoogleID: &googleID,
		Name:     name,
		Email:    email,
		UserType: "student",
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Msg("User registered via Google")
	return s.userRepo.GetByID(ctx, id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
