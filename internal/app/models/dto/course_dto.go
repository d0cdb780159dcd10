package dto

import "github.com/miraihq/mirai-backend/internal/app/models"

// CreateCourseRequest is the payload for POST /api/courses
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=3"`
	Description string   `json:"description" binding:"required,min=10"`
	Level       string   `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Duration    string   `json:"duration" binding:"required"`
	Tags        []string `json:"tags"`
}

// CreateCourseResponse carries the id of the new course
type CreateCourseResponse struct {
	Message  string `json:"message"`
	CourseID int64  `json:"courseId"`
}

// CourseListResponse wraps a course listing
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
}

// EnrollResponse is returned by POST /api/courses/:id/enroll
type EnrollResponse struct {
	Message         string `json:"message"`
	AlreadyEnrolled bool   `json:"alreadyEnrolled"`
}
