package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miraihq/mirai-backend/internal/app/controllers"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/middleware"
	"github.com/miraihq/mirai-backend/internal/pkg/session"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	mentorController *controllers.MentorController,
	sessions *session.Manager,
	googleEnabled bool,
	webDir string,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authController.SignUp)
		auth.POST("/signin", authController.SignIn)
		auth.POST("/logout", authController.Logout)
		if googleEnabled {
			auth.GET("/google", authController.GoogleRedirect)
			auth.GET("/google/callback", authController.GoogleCallback)
		}
	}

	// --- API routes ---
	api := router.Group("/api")
	{
		// Public listings
		api.GET("/courses", courseController.List)
		api.GET("/mentors", mentorController.List)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Session-protected routes
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(sessions))
		{
			protected.GET("/user", userController.GetCurrentUser)
			protected.PUT("/user/profile", userController.UpdateProfile)

			protected.POST("/courses", courseController.Create)
			protected.GET("/courses/my", courseController.ListMine)
			protected.POST("/courses/:id/enroll", courseController.Enroll)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupPages(router, sessions, webDir)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
	})
}

// setupPages serves the static frontend when a web directory is present.
// Home and dashboard require a session; anonymous visitors are sent to /auth.
func setupPages(router *gin.Engine, sessions *session.Manager, webDir string) {
	if webDir == "" {
		return
	}
	if _, err := os.Stat(webDir); err != nil {
		return
	}

	router.Static("/assets", filepath.Join(webDir, "assets"))

	page := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.File(filepath.Join(webDir, name))
		}
	}

	router.GET("/", page("index.html"))
	router.GET("/auth", page("auth.html"))

	gated := router.Group("")
	gated.Use(middleware.RedirectIfAnonymous(sessions, "/auth"))
	{
		gated.GET("/home", page("home.html"))
		gated.GET("/dashboard", page("dashboard.html"))
	}
}
