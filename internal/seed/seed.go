package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/miraihq/mirai-backend/internal/app/models"
	appRepos "github.com/miraihq/mirai-backend/internal/app/repositories"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

type defaultMentor struct {
	name         string
	email        string
	expertise    string
	experience   string
	availability string
}

var defaultMentors = []defaultMentor{
	{"Priya Sharma", "priya.mentor@mirai.app", "Web Development", "5 years", "Weekends"},
	{"Rahul Verma", "rahul.mentor@mirai.app", "Data Science", "7 years", "Evenings"},
	{"Ananya Iyer", "ananya.mentor@mirai.app", "Career Guidance", "4 years", "Weekdays"},
}

// CreateDefaultData seeds the mentor directory on an empty database.
// Reruns are harmless; an already-seeded database is left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	mentorRepo := appRepos.NewMentorRepository(dbPool)

	count, err := mentorRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count mentors: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("mentors", count).Msg("Mentor directory already seeded")
		return nil
	}

	lgr.Info().Msg("Seeding default mentors...")
	var finalErr error
	for _, m := range defaultMentors {
		userID, err := userRepo.Create(ctx, &appModels.User{
			Name:     m.name,
			Email:    m.email,
			UserType: "alumni",
		})
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			existing, errGet := userRepo.GetByEmail(ctx, m.email)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("email", m.email).Msg("Error resolving existing mentor user")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			userID = existing.ID
		} else if err != nil {
			lgr.Error().Err(err).Str("email", m.email).Msg("Error creating mentor user")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if _, err := mentorRepo.Create(ctx, &appModels.Mentor{
			UserID:       userID,
			Expertise:    m.expertise,
			Experience:   m.experience,
			Availability: m.availability,
		}); err != nil {
			lgr.Error().Err(err).Str("email", m.email).Msg("Error creating mentor profile")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
