package dto

import "github.com/miraihq/mirai-backend/internal/app/models"

// SignUpRequest is the payload for POST /auth/signup
type SignUpRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	UserType    string `json:"userType"` // free text at creation, defaults to student
	CollegeName string `json:"collegeName"`
	Course      string `json:"course"`
}

// SignInRequest is the payload for POST /auth/signin
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the message and user returned by signup/signin.
// The user's password field is never serialized.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}
