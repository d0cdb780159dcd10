package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miraihq/mirai-backend/internal/app/models"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, update *models.UserProfileUpdate) error
	LinkGoogleID(ctx context.Context, userID int64, googleID string) error
}

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByCreator(ctx context.Context, creatorID int64) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// IEnrollmentRepository defines the interface for enrollment persistence
type IEnrollmentRepository interface {
	Create(ctx context.Context, userID, courseID int64) error
}

// IMentorRepository defines the interface for mentor-related database operations
type IMentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) (int64, error)
	GetAll(ctx context.Context) ([]models.Mentor, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	MentorRepository     *MentorRepository
}

// NewRepositories creates all repositories on a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		MentorRepository:     NewMentorRepository(db),
	}
}
