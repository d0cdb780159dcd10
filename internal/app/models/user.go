package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// A user holds at least one of Password or GoogleID.
type User struct {
	ID          int64     `json:"id" db:"id"`                                // Unique identifier for the user
	GoogleID    *string   `json:"googleId,omitempty" db:"google_id"`         // External identity provider id (nullable)
	Name        string    `json:"name" db:"name"`                            // Display name
	Email       string    `json:"email" db:"email"`                          // Login key for local auth, unique
	Password    string    `json:"-" db:"password"`                           // Hashed credential (excluded from JSON, empty for OAuth-only users)
	UserType    string    `json:"userType" db:"user_type"`                   // student, senior, alumni or fresher
	CollegeName *string   `json:"collegeName,omitempty" db:"college_name"`   // Optional profile field
	Course      *string   `json:"course,omitempty" db:"course"`              // Optional profile field
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`                 // Timestamp when the user was created
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`                 // Refreshed on any mutation
}

// HasLocalPassword reports whether the user can sign in with email+password.
func (u *User) HasLocalPassword() bool {
	return u.Password != ""
}

// UserProfileUpdate carries a partial profile mutation. Nil fields are
// left untouched; updated_at is always stamped.
type UserProfileUpdate struct {
	Name        *string
	CollegeName *string
	Course      *string
	UserType    *string
}

// IsEmpty reports whether the update changes nothing
func (u *UserProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.CollegeName == nil && u.Course == nil && u.UserType == nil
}
