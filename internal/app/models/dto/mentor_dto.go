package dto

import "github.com/miraihq/mirai-backend/internal/app/models"

// MentorListResponse wraps a mentor listing
type MentorListResponse struct {
	Mentors []models.Mentor `json:"mentors"`
}
