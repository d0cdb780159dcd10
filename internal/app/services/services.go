package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/repositories"
	"github.com/miraihq/mirai-backend/internal/pkg/oauth"
)

// IAuthService defines identity operations
type IAuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*models.User, error)
	SignInWithGoogle(ctx context.Context, profile *oauth.GoogleUser) (*models.User, error)
}

// IUserService defines profile operations
type IUserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
}

// ICourseService defines course operations
type ICourseService interface {
	Create(ctx context.Context, creatorID int64, req *dto.CreateCourseRequest) (int64, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]models.Course, error)
	Enroll(ctx context.Context, userID, courseID int64) (alreadyEnrolled bool, err error)
}

// IMentorService defines mentor operations
type IMentorService interface {
	ListAll(ctx context.Context) ([]models.Mentor, error)
}

// Services bundles all service instances
type Services struct {
	AuthService   IAuthService
	UserService   IUserService
	CourseService ICourseService
	MentorService IMentorService
}

// NewServices creates all services on the shared repositories
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repos.UserRepository, logger),
		UserService:   NewUserService(repos.UserRepository, logger),
		CourseService: NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, logger),
		MentorService: NewMentorService(repos.MentorRepository, logger),
	}
}
