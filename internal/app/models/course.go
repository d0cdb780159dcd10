package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// Tags are stored serialized as JSON text and exposed as a string slice.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Level       string    `json:"level" db:"level"` // Beginner, Intermediate or Advanced
	Duration    string    `json:"duration" db:"duration"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatorID   *int64    `json:"creatorId" db:"creator_id"`     // Nullable for legacy/system rows
	CreatorName *string   `json:"creatorName,omitempty"`         // Joined from users, list view only
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Enrollment records a user's enrollment in a course.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}
