package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-schedule/config"
	deliveryHttp "go-doctor-schedule/internal/delivery/http"
	"go-doctor-schedule/internal/delivery/http/handler"
	"go-doctor-schedule/internal/delivery/http/middleware"
	"go-doctor-schedule/internal/infrastructure/cache"
	"go-doctor-schedule/internal/infrastructure/database"
	"go-doctor-schedule/internal/infrastructure/messaging"
	"go-doctor-schedule/internal/repository"
	"go-doctor-schedule/internal/service"
	"go-doctor-schedule/internal/usecase"
	"go-doctor-schedule/pkg/jwt"
	"go-doctor-schedule/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *messaging.Publisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Warn("Redis disabled, schedule generation is not serialized across instances")
	}

	// Initialize message broker
	if cfg.Broker.Enabled {
		publisher, err := messaging.NewRabbitMQPublisher(cfg.Broker)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to message broker: %w", err)
		}
		app.Publisher = publisher
		logrus.Info("Message broker connected successfully")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, app.RedisClient, app.Publisher)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher *messaging.Publisher) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	uow := repository.NewUnitOfWork(db)
	doctorRepo := repository.NewDoctorRepository()
	scheduleRepo := repository.NewScheduleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	scheduleLocker := service.NewNoopScheduleLocker()
	if redisClient != nil {
		scheduleLocker = service.NewRedisScheduleLocker(redisClient, log, cfg.Schedule.LockTTL)
	}

	eventPublisher := service.NewNoopScheduleEventPublisher()
	if publisher != nil {
		eventPublisher = service.NewBrokerScheduleEventPublisher(publisher)
	}

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(uow, log, doctorRepo)
	doctorScheduleUsecase := usecase.NewDoctorScheduleUsecase(uow, log, scheduleRepo, doctorRepo, auditService, scheduleLocker, eventPublisher)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	doctorScheduleHandler := handler.NewDoctorScheduleHandler(doctorScheduleUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, doctorScheduleHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, broker)
func (app *App) Close() {
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			logrus.Warnf("Failed to close message broker connection: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
