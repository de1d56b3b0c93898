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

	appControllers "github.com/campusbridge/campusbridge/internal/app/controllers"
	appMigrations "github.com/campusbridge/campusbridge/internal/app/migrations"
	appRepos "github.com/campusbridge/campusbridge/internal/app/repositories"
	appRoutes "github.com/campusbridge/campusbridge/internal/app/routes"
	appServices "github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/db"
	appMiddleware "github.com/campusbridge/campusbridge/internal/middleware"
	pkgAuth "github.com/campusbridge/campusbridge/internal/pkg/auth"
	"github.com/campusbridge/campusbridge/internal/pkg/helpers"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
	"github.com/campusbridge/campusbridge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	CollegeController *appControllers.CollegeController
	FeedController    *appControllers.FeedController
	AlumniController  *appControllers.AlumniController
	StudentController *appControllers.StudentController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateDir(ctx, migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, dbPool, cfg); err != nil {
		// Seed failures do not stop startup; the API works without defaults.
		logger.Error().Err(err).Msg("Failed to seed default data")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth)
	deps.UserController = appControllers.NewUserController(deps.Services.User)
	deps.CollegeController = appControllers.NewCollegeController(deps.Services.College)
	deps.FeedController = appControllers.NewFeedController(deps.Services.Feed)
	deps.AlumniController = appControllers.NewAlumniController(deps.Services.Alumni)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CollegeController,
		deps.FeedController,
		deps.AlumniController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
