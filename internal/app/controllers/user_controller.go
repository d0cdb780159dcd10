package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/services"
	"github.com/miraihq/mirai-backend/internal/middleware"
)

// UserController handles the current user's profile endpoints
type UserController struct {
	userService services.IUserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.IUserService) *UserController {
	return &UserController{userService: userService}
}

// GetCurrentUser handles GET /api/user
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, err := c.userService.GetProfile(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserResponse{User: user})
}

// UpdateProfile handles PUT /api/user/profile
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if _, err := c.userService.UpdateProfile(ctx.Request.Context(), middleware.UserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile updated successfully"})
}
