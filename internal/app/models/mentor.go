package models

import (
	"time"
)

// Mentor defines the mentor model based on the 'mentors' table.
type Mentor struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Name         string    `json:"name"` // Joined from users
	Expertise    string    `json:"expertise" db:"expertise"`
	Experience   string    `json:"experience" db:"experience"`
	Availability string    `json:"availability" db:"availability"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
