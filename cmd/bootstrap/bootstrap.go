package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-automation-backend/config"
	deliveryHttp "health-automation-backend/internal/delivery/http"
	"health-automation-backend/internal/delivery/http/handler"
	"health-automation-backend/internal/delivery/http/middleware"
	domainRepo "health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/infrastructure/cache"
	"health-automation-backend/internal/infrastructure/database"
	"health-automation-backend/internal/repository"
	"health-automation-backend/internal/service"
	"health-automation-backend/internal/usecase"
	"health-automation-backend/pkg/jwt"
	"health-automation-backend/pkg/password"
	"health-automation-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(ctx, db, repository.NewRoleRepository()); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	httpHandler, err := NewHandler(cfg, db, cache.NewTokenStore(redisClient), log)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewHandler wires repositories, usecases and handlers into the HTTP router.
func NewHandler(cfg *config.Config, db *gorm.DB, tokenRepo domainRepo.TokenRepository, log *logrus.Logger) (http.Handler, error) {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.App.Timezone, err)
	}

	// Initialize services
	jwtService := jwt.NewJWTService(cfg.JWT)
	hasher := password.NewHasher(password.Params{
		Memory:      cfg.Password.Memory,
		Iterations:  cfg.Password.Iterations,
		Parallelism: cfg.Password.Parallelism,
	})
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientProfileRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	employeeRepo := repository.NewEmployeeProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	investigationRepo := repository.NewInvestigationRepository(db)
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	patientUsecase := usecase.NewProfileUsecase(db, log, usecase.PatientKind(appointmentRepo), userRepo, patientRepo, auditService)
	doctorUsecase := usecase.NewProfileUsecase(db, log, usecase.DoctorKind(appointmentRepo), userRepo, doctorRepo, auditService)
	employeeUsecase := usecase.NewProfileUsecase(db, log, usecase.EmployeeKind(), userRepo, employeeRepo, auditService)

	userUsecase := usecase.NewUserUsecase(db, log, hasher, userRepo, roleRepo, tokenRepo, auditService, employeeUsecase, doctorUsecase, patientUsecase)
	authUsecase := usecase.NewAuthUsecase(db, log, hasher, userRepo, tokenRepo, jwtService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, location, userRepo, patientRepo, doctorRepo, appointmentRepo, auditService)
	investigationUsecase := usecase.NewInvestigationUsecase(log, investigationRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, userUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	employeeHandler := handler.NewEmployeeHandler(employeeUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	investigationHandler := handler.NewInvestigationHandler(investigationUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRepo, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)

	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		doctorHandler,
		employeeHandler,
		appointmentHandler,
		investigationHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)

	return router.Setup(), nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

