package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liber-server/config"
	deliveryHttp "liber-server/internal/delivery/http"
	"liber-server/internal/delivery/http/handler"
	"liber-server/internal/delivery/http/middleware"
	"liber-server/internal/infrastructure/database"
	"liber-server/internal/repository"
	"liber-server/internal/usecase"
	"liber-server/pkg/jwt"
	"liber-server/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.Database.URL); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	catalogRepo := repository.NewCatalogRepository()
	cityRepo := repository.NewCityRepository()
	patientRepo := repository.NewPatientRepository()
	docRepo := repository.NewPatientDocumentRepository()
	hospRepo := repository.NewHospitalizationRepository()
	reportRepo := repository.NewReportRepository()
	userRepo := repository.NewUserRepository()

	log := logrus.StandardLogger()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, catalogRepo)
	cityUsecase := usecase.NewCityUsecase(db, log, cityRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, docRepo, catalogRepo, cityRepo, reportRepo)
	hospUsecase := usecase.NewHospitalizationUsecase(db, log, hospRepo, patientRepo, catalogRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, reportRepo, patientRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	hospHandler := handler.NewHospitalizationHandler(hospUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	cityHandler := handler.NewCityHandler(cityUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		hospHandler,
		reportHandler,
		cityHandler,
		catalogUsecase,
		customValidator,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.Server.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
