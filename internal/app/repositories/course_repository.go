package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course. Tags are stored as a JSON document so the
// list round-trips exactly as submitted.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	tags, err := encodeTags(course.Tags)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO courses (title, description, level, duration, tags, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		course.Title, course.Description, course.Level, course.Duration, tags, course.CreatorID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetAll retrieves all courses with their creator's name, newest first
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query, args, err := r.courseSelect().
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course list query: %w", err)
	}

	return r.queryCourses(ctx, query, args...)
}

// GetByCreator retrieves courses created by a given user, newest first
func (r *CourseRepository) GetByCreator(ctx context.Context, creatorID int64) ([]models.Course, error) {
	query, args, err := r.courseSelect().
		Where(squirrel.Eq{"c.creator_id": creatorID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course list query: %w", err)
	}

	return r.queryCourses(ctx, query, args...)
}

// GetByID retrieves a single course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.courseSelect().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	courses, err := r.queryCourses(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return &courses[0], nil
}

func (r *CourseRepository) courseSelect() squirrel.SelectBuilder {
	return r.sb.
		Select("c.id", "c.title", "c.description", "c.level", "c.duration",
			"c.tags", "c.creator_id", "u.name AS creator_name", "c.created_at").
		From("courses c").
		LeftJoin("users u ON u.id = c.creator_id")
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		var tags *string
		err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Level, &course.Duration,
			&tags, &course.CreatorID, &course.CreatorName, &course.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}

		course.Tags, err = decodeTags(tags)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	return courses, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("error encoding tags: %w", err)
	}
	return string(raw), nil
}

// decodeTags unpacks the stored JSON document. NULL and empty documents
// decode to an empty slice so responses always carry an array.
func decodeTags(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
