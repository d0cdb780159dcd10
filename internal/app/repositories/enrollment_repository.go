package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
	"github.com/miraihq/mirai-backend/internal/pkg/dberrors"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create records an enrollment. The (user_id, course_id) pair is unique;
// a repeat enrollment returns ErrConflict.
func (r *EnrollmentRepository) Create(ctx context.Context, userID, courseID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)`,
		userID, courseID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}
