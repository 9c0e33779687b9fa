package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tanmay/coachdesk/docs" // generated swagger docs
	appAuth "github.com/tanmay/coachdesk/internal/app/auth"
	appControllers "github.com/tanmay/coachdesk/internal/app/controllers"
	appMigrations "github.com/tanmay/coachdesk/internal/app/migrations"
	appRepos "github.com/tanmay/coachdesk/internal/app/repositories"
	appRoutes "github.com/tanmay/coachdesk/internal/app/routes"
	appServices "github.com/tanmay/coachdesk/internal/app/services"
	"github.com/tanmay/coachdesk/internal/config"
	"github.com/tanmay/coachdesk/internal/db"
	appMiddleware "github.com/tanmay/coachdesk/internal/middleware"
	"github.com/tanmay/coachdesk/internal/pkg/gateway"
	"github.com/tanmay/coachdesk/internal/pkg/helpers"
	"github.com/tanmay/coachdesk/internal/pkg/identity"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
	"github.com/tanmay/coachdesk/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos                *appRepos.Repositories
	Verifier             identity.Verifier
	Gateway              gateway.Gateway
	AuthzService         *appAuth.AuthorizationService
	AttendanceService    *appServices.AttendanceService
	PaymentService       *appServices.PaymentService
	StudentService       *appServices.StudentService
	PaymentController    *appControllers.PaymentController
	AttendanceController *appControllers.AttendanceController
	StudentController    *appControllers.StudentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the store connection, runs migrations and
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

	migrationsDir := "migrations"
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

// newVerifier selects the identity verifier implementation by config.
func newVerifier(cfg *config.Config) (identity.Verifier, error) {
	switch cfg.Identity.Mode {
	case "jwt":
		return identity.NewJWTVerifier(identity.JWTConfig{
			SigningKey: cfg.Identity.SigningKey,
			Issuer:     cfg.Identity.Issuer,
		}), nil
	case "http":
		timeout := helpers.ParseDuration(cfg.Identity.Timeout, 5*time.Second)
		return identity.NewOracleClient(cfg.Identity.OracleURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Identity.Mode)
	}
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	verifier, err := newVerifier(cfg)
	if err != nil {
		return nil, err
	}
	deps.Verifier = verifier

	deps.Gateway = gateway.NewRazorpayGateway(cfg.Gateway.KeyID, cfg.Gateway.KeySecret, cfg.Gateway.Currency)

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.RoleRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.StudentRepository)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.StudentRepository, deps.Gateway, cfg.Gateway.KeySecret)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.RoleRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Verifier, deps.AuthzService)

	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	router.Use(appMiddleware.NewTokenBucket(cfg.RateLimit.PerMinute, cfg.RateLimit.PerMinute).Handler())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": true})
	})

	appRoutes.SetupRouter(router,
		deps.PaymentController,
		deps.AttendanceController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
