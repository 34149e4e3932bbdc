package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lenslearn/backend/internal/app/controllers"
	appMigrations "github.com/lenslearn/backend/internal/app/migrations"
	appRepos "github.com/lenslearn/backend/internal/app/repositories"
	appRoutes "github.com/lenslearn/backend/internal/app/routes"
	appServices "github.com/lenslearn/backend/internal/app/services"
	"github.com/lenslearn/backend/internal/config"
	"github.com/lenslearn/backend/internal/db"
	appMiddleware "github.com/lenslearn/backend/internal/middleware"
	pkgAuth "github.com/lenslearn/backend/internal/pkg/auth"
	"github.com/lenslearn/backend/internal/pkg/logger"
	"github.com/lenslearn/backend/internal/pkg/metrics"
	"github.com/lenslearn/backend/internal/pkg/payment"
	"github.com/lenslearn/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService          appServices.UserService
	ClassService         appServices.ClassService
	InstructorService    appServices.InstructorService
	SelectionService     appServices.SelectionService
	PaymentService       appServices.PaymentService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ClassController      *appControllers.ClassController
	InstructorController *appControllers.InstructorController
	SelectionController  *appControllers.SelectionController
	PaymentController    *appControllers.PaymentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Gateway              payment.Gateway
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Missing seed data is not fatal; admin routes just stay unreachable
		// until an admin user exists.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = time.Hour
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Gateway = payment.NewStripeGateway(cfg.Payment.SecretKey)

	deps.UserService = appServices.NewUserService(deps.Repos.Users)
	deps.ClassService = appServices.NewClassService(deps.Repos.Classes)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.Instructors)
	deps.SelectionService = appServices.NewSelectionService(deps.Repos.Selections)
	deps.PaymentService = appServices.NewPaymentService(deps.Gateway, deps.Repos.Payments, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.Users)

	deps.AuthController = appControllers.NewAuthController(deps.JWTService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.SelectionController = appControllers.NewSelectionController(deps.SelectionService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(cors.Default())
	router.Use(appMiddleware.RequestMetrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClassController,
		deps.InstructorController,
		deps.SelectionController,
		deps.PaymentController,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := dbPool.Ping(ctx); err != nil {
			c.String(http.StatusServiceUnavailable, "db not ok: %s", err.Error())
			return
		}
		metrics.ObserveDBPing(time.Since(t0))
		c.String(http.StatusOK, "ok")
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})

	return router
}
