package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/miraihq/mirai-backend/internal/app/controllers"
	appMigrations "github.com/miraihq/mirai-backend/internal/app/migrations"
	appRepos "github.com/miraihq/mirai-backend/internal/app/repositories"
	appRoutes "github.com/miraihq/mirai-backend/internal/app/routes"
	appServices "github.com/miraihq/mirai-backend/internal/app/services"
	"github.com/miraihq/mirai-backend/internal/config"
	"github.com/miraihq/mirai-backend/internal/db"
	appMiddleware "github.com/miraihq/mirai-backend/internal/middleware"
	"github.com/miraihq/mirai-backend/internal/pkg/logger"
	"github.com/miraihq/mirai-backend/internal/pkg/metrics"
	"github.com/miraihq/mirai-backend/internal/pkg/oauth"
	"github.com/miraihq/mirai-backend/internal/pkg/session"
	"github.com/miraihq/mirai-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services         *appServices.Services
	Repos            *appRepos.Repositories
	Sessions         *session.Manager
	Google           *oauth.GoogleOAuth
	AuthController   *appControllers.AuthController
	UserController   *appControllers.UserController
	CourseController *appControllers.CourseController
	MentorController *appControllers.MentorController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := filepath.Join("internal", "app", "migrations", "sql")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis establishes the Redis connection backing the session store.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Establishing redis connection...")
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return nil, err
	}
	lgr.Info().Msg("Redis connection successfully established.")
	return client, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos, lgr)

	deps.Sessions = session.NewManager(redisClient, session.Config{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.SessionTTL(),
		Secure:     cfg.Session.Secure,
	}, lgr)

	if cfg.GoogleEnabled() {
		deps.Google = oauth.NewGoogle(
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			cfg.Google.RedirectURL,
			cfg.Google.StateSecret,
		)
		lgr.Info().Msg("Google OAuth configured")
	} else {
		lgr.Info().Msg("Google OAuth not configured, /auth/google routes disabled")
	}

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, deps.Sessions, deps.Google)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.MentorController = appControllers.NewMentorController(deps.Services.MentorService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.Metrics())

	metrics.MustRegister()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.MentorController,
		deps.Sessions,
		deps.Google != nil,
		cfg.Web.Dir,
	)

	return router
}
