package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/repositories"
)

// MentorService implements mentor operations
type MentorService struct {
	mentorRepo repositories.IMentorRepository
	logger     zerolog.Logger
}

// NewMentorService creates a new MentorService
func NewMentorService(mentorRepo repositories.IMentorRepository, logger zerolog.Logger) *MentorService {
	return &MentorService{
		mentorRepo: mentorRepo,
		logger:     logger.With().Str("service", "mentor").Logger(),
	}
}

// ListAll retrieves every mentor profile
func (s *MentorService) ListAll(ctx context.Context) ([]models.Mentor, error) {
	return s.mentorRepo.GetAll(ctx)
}
