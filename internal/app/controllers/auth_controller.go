package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/app/services"
	"github.com/miraihq/mirai-backend/internal/middleware"
	"github.com/miraihq/mirai-backend/internal/pkg/logger"
	"github.com/miraihq/mirai-backend/internal/pkg/oauth"
	"github.com/miraihq/mirai-backend/internal/pkg/session"
)

// AuthController handles signup, signin, logout and the OAuth flow
type AuthController struct {
	authService services.IAuthService
	sessions    *session.Manager
	google      *oauth.GoogleOAuth
}

// NewAuthController creates a new AuthController. google may be nil when
// OAuth is not configured; the OAuth routes are not registered then.
func NewAuthController(authService services.IAuthService, sessions *session.Manager, google *oauth.GoogleOAuth) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		google:      google,
	}
}

// SignUp handles POST /auth/signup
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	user, err := c.authService.SignUp(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.establishSession(ctx, user) {
		return
	}
	ctx.JSON(http.StatusCreated, dto.AuthResponse{Message: "User created successfully", User: user})
}

// SignIn handles POST /auth/signin
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	user, err := c.authService.SignIn(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !c.establishSession(ctx, user) {
		return
	}
	ctx.JSON(http.StatusOK, dto.AuthResponse{Message: "Signed in successfully", User: user})
}

// Logout handles POST /auth/logout. Logging out without a session succeeds,
// but a store failure leaves the session live and must surface as an error.
func (c *AuthController) Logout(ctx *gin.Context) {
	token := c.sessions.TokenFromRequest(ctx)
	if err := c.sessions.Destroy(ctx.Request.Context(), token); err != nil {
		logger.Error().Err(err).Msg("Failed to destroy session")
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.sessions.ClearCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// GoogleRedirect handles GET /auth/google
func (c *AuthController) GoogleRedirect(ctx *gin.Context) {
	state := c.google.MakeState(uuid.NewString())
	ctx.Redirect(http.StatusFound, c.google.AuthURL(state))
}

// GoogleCallback handles GET /auth/google/callback. Any failure sends the
// browser back to the sign-in page rather than rendering a JSON error.
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	code := ctx.Query("code")
	if code == "" || !c.google.VerifyState(state) {
		ctx.Redirect(http.StatusFound, "/auth?error=oauth_failed")
		return
	}

	profile, err := c.google.Exchange(ctx.Request.Context(), code)
	if err != nil {
		logger.Warn().Err(err).Msg("Google code exchange failed")
		ctx.Redirect(http.StatusFound, "/auth?error=oauth_failed")
		return
	}

	user, err := c.authService.SignInWithGoogle(ctx.Request.Context(), profile)
	if err != nil {
		logger.Error().Err(err).Msg("Google sign-in failed")
		ctx.Redirect(http.StatusFound, "/auth?error=oauth_failed")
		return
	}

	token, err := c.sessions.Establish(ctx.Request.Context(), user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to establish session")
		ctx.Redirect(http.StatusFound, "/auth?error=oauth_failed")
		return
	}
	c.sessions.SetCookie(ctx, token)
	ctx.Redirect(http.StatusFound, "/home")
}

func (c *AuthController) establishSession(ctx *gin.Context, user *models.User) bool {
	token, err := c.sessions.Establish(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	c.sessions.SetCookie(ctx, token)
	return true
}
