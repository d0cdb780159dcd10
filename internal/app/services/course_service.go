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
	"github.com/miraihq/mirai-backend/internal/pkg/validation"
)

// CourseService implements course operations
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, enrollmentRepo repositories.IEnrollmentRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger.With().Str("service", "course").Logger(),
	}
}

// Create validates and stores a new course. Every failing field is
// collected before returning so the response enumerates all of them.
func (s *CourseService) Create(ctx context.Context, creatorID int64, req *dto.CreateCourseRequest) (int64, error) {
	verrs := apperrors.NewValidationErrors()

	title := strings.TrimSpace(req.Title)
	if len(title) < validation.TitleMinLength {
		verrs.Add("title", fmt.Sprintf("title must be at least %d characters", validation.TitleMinLength))
	}
	description := strings.TrimSpace(req.Description)
	if len(description) < validation.DescriptionMinLength {
		verrs.Add("description", fmt.Sprintf("description must be at least %d characters", validation.DescriptionMinLength))
	}
	if !validation.IsValidCourseLevel(req.Level) {
		verrs.Add("level", fmt.Sprintf("level must be one of: %s", strings.Join(validation.CourseLevels, " ")))
	}
	if strings.TrimSpace(req.Duration) == "" {
		verrs.Add("duration", "duration is required")
	}
	if verrs.HasErrors() {
		return 0, verrs
	}

	id, err := s.courseRepo.Create(ctx, &models.Course{
		Title:       title,
		Description: description,
		Level:       req.Level,
		Duration:    req.Duration,
		Tags:        req.Tags,
		CreatorID:   &creatorID,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("courseId", id).Int64("creatorId", creatorID).Msg("Course created")
	return id, nil
}

// ListAll retrieves every course, newest first
func (s *CourseService) ListAll(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// ListByCreator retrieves the courses created by a user, newest first
func (s *CourseService) ListByCreator(ctx context.Context, creatorID int64) ([]models.Course, error) {
	return s.courseRepo.GetByCreator(ctx, creatorID)
}

// Enroll registers a user on a course. Enrolling twice is not an error;
// the second call reports alreadyEnrolled instead.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID int64) (bool, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return false, err
	}

	err := s.enrollmentRepo.Create(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return true, nil
		}
		return false, err
	}

	s.logger.Info().Int64("userId", userID).Int64("courseId", courseID).Msg("User enrolled")
	return false, nil
}
