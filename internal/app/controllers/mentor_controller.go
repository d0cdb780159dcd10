package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/services"
	"github.com/miraihq/mirai-backend/internal/middleware"
)

// MentorController handles mentor endpoints
type MentorController struct {
	mentorService services.IMentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.IMentorService) *MentorController {
	return &MentorController{mentorService: mentorService}
}

// List handles GET /api/mentors
func (c *MentorController) List(ctx *gin.Context) {
	mentors, err := c.mentorService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MentorListResponse{Mentors: mentors})
}
