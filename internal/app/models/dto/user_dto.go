package dto

import "github.com/miraihq/mirai-backend/internal/app/models"

// UserResponse wraps the current user for GET /api/user
type UserResponse struct {
	User *models.User `json:"user"`
}

// UpdateProfileRequest is the payload for PUT /api/user/profile.
// All fields are optional; at least one must be supplied.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	CollegeName *string `json:"collegeName,omitempty"`
	Course      *string `json:"course,omitempty"`
	UserType    *string `json:"userType,omitempty"` // validated against the closed set
}

// IsEmpty reports whether no field was supplied
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.CollegeName == nil && r.Course == nil && r.UserType == nil
}
