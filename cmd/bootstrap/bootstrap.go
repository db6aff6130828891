package bootstrap

import (
	"context"
	"fmt"
	"os"

	"clinic-manager/config"
	"clinic-manager/internal/delivery/cli"
	"clinic-manager/internal/infrastructure/cache"
	"clinic-manager/internal/infrastructure/database"
	"clinic-manager/internal/repository"
	"clinic-manager/internal/service"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/token"
	"clinic-manager/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Runner      *cli.Runner
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database schema up to date")

	// Initialize Redis. The console stays usable without it, the
	// practitioner directory just loses its cache.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, directory cache disabled: %v", err)
		redisClient = nil
	} else {
		logrus.Info("Redis connected successfully")
	}
	app.RedisClient = redisClient

	// Initialize all layers
	runner, err := initializeRunner(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Runner = runner

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
}

// initializeRunner creates the console runner with the full dependency graph
func initializeRunner(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*cli.Runner, error) {
	// Initialize token service
	tokenService := token.NewService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	practitionerCache := service.NewPractitionerCache(redisClient, log)

	// Seed the first staff accounts on an empty database
	if err := database.Seed(db, userRepo, cfg.Seed); err != nil {
		return nil, fmt.Errorf("failed to seed staff accounts: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, tokenService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService, practitionerCache)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, userRepo, auditService)

	return cli.NewRunner(os.Stdin, os.Stdout, log, customValidator, authUsecase, userUsecase, patientUsecase, appointmentUsecase), nil
}

// Run drives the console loop until logout or end of input. Signals are not
// trapped: the prompter blocks on stdin, which no cancelled context can
// unblock, so Ctrl-C keeps its default disposition and ends the process.
func (app *App) Run() {
	app.Runner.Run(context.Background())
	app.Close()
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
