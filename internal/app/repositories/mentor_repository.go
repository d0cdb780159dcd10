package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miraihq/mirai-backend/internal/app/models"
)

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create inserts a new mentor profile
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentors (user_id, expertise, experience, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		mentor.UserID, mentor.Expertise, mentor.Experience, mentor.Availability).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating mentor: %w", err)
	}

	return id, nil
}

// GetAll retrieves all mentors with their display names
func (r *MentorRepository) GetAll(ctx context.Context) ([]models.Mentor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.user_id, u.name, m.expertise, m.experience, m.availability, m.created_at
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]models.Mentor, 0)
	for rows.Next() {
		var mentor models.Mentor
		err := rows.Scan(
			&mentor.ID, &mentor.UserID, &mentor.Name, &mentor.Expertise,
			&mentor.Experience, &mentor.Availability, &mentor.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor: %w", err)
		}
		mentors = append(mentors, mentor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error fetching mentors: %w", err)
	}

	return mentors, nil
}

// Count returns the number of mentor profiles
func (r *MentorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mentors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting mentors: %w", err)
	}
	return count, nil
}
