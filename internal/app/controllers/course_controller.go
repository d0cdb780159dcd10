package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/services"
	"github.com/miraihq/mirai-backend/internal/middleware"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.ICourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.ICourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// Create handles POST /api/courses
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	id, err := c.courseService.Create(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateCourseResponse{Message: "Course created successfully", CourseID: id})
}

// List handles GET /api/courses
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courseService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseListResponse{Courses: courses})
}

// ListMine handles GET /api/courses/my
func (c *CourseController) ListMine(ctx *gin.Context) {
	courses, err := c.courseService.ListByCreator(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseListResponse{Courses: courses})
}

// Enroll handles POST /api/courses/:id/enroll. A non-numeric id behaves
// like a missing course.
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrCourseNotFound)
		return
	}

	already, err := c.courseService.Enroll(ctx.Request.Context(), middleware.UserID(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Enrolled successfully"
	if already {
		message = "Already enrolled in this course"
	}
	ctx.JSON(http.StatusOK, dto.EnrollResponse{Message: message, AlreadyEnrolled: already})
}
