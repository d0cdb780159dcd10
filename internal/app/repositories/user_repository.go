package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
	"github.com/miraihq/mirai-backend/internal/pkg/dberrors"
)

const userColumns = `id, google_id, name, email, password, user_type, college_name, course, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user. The database enforces email uniqueness; a
// duplicate insert fails with ErrEmailAlreadyExists even when two requests race.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var password *string
	if user.Password != "" {
		password = &user.Password
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (google_id, name, email, password, user_type, college_name, course)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.GoogleID, user.Name, user.Email, password, user.UserType, user.CollegeName, user.Course).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		// The only other unique column is google_id.
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByGoogleID retrieves a user by external identity provider id
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	var password *string
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.GoogleID, &user.Name, &user.Email, &password,
		&user.UserType, &user.CollegeName, &user.Course, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if password != nil {
		user.Password = *password
	}
	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// LinkGoogleID attaches an external identity to an existing local account
func (r *UserRepository) LinkGoogleID(ctx context.Context, userID int64, googleID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET google_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		googleID, userID)
	if err != nil {
		return fmt.Errorf("error linking google id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfile applies the supplied fields and stamps updated_at.
// Returns ErrUserNotFound if the id does not exist.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, update *models.UserProfileUpdate) error {
	builder := r.sb.Update("users").Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.CollegeName != nil {
		builder = builder.Set("college_name", *update.CollegeName)
	}
	if update.Course != nil {
		builder = builder.Set("course", *update.Course)
	}
	if update.UserType != nil {
		builder = builder.Set("user_type", *update.UserType)
	}

	sql, args, err := builder.Where(squirrel.Eq{"id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
