// cmd/summary-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "summary_service/internal/api/rest/v1"
	"summary_service/internal/app"
	"summary_service/internal/domain/summaries"
	"summary_service/internal/infrastructure/persistence"
	"summary_service/internal/infrastructure/persistence/models"
	"summary_service/internal/pkg/config"
	"summary_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Resolve configuration from the environment; a missing DATABASE_URL
	// fails here, before any listener is bound
	restConfig, err := config.LoadRestConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	log.Info("Loaded configuration for environment ", restConfig.Environment)

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	summaryCreation summaries.SummaryCreationService
	summaryMetadata summaries.SummaryMetadataService
}

// initializeDependencies sets up all application components. The database
// connection and schema migration complete before the HTTP listener starts,
// so no route handler can observe an uninitialized database binding.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.SummaryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	summaryRepo, err := persistence.NewGormSummaryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary repository: %w", err)
	}

	// Initialize services
	summaryCreationService, err := app.NewSummaryCreationService(summaryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary creation service: %w", err)
	}

	summaryMetadataService, err := app.NewSummaryMetadataService(summaryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db: db,
		services: &appServices{
			summaryCreation: summaryCreationService,
			summaryMetadata: summaryMetadataService,
		},
	}, nil
}

// newRouter assembles the gin engine with CORS middleware and all API routes
// wired against the initialized dependencies
func newRouter(cfg *config.RestConfig, deps *appDependencies) *gin.Engine {
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		cfg,
		deps.services.summaryCreation,
		deps.services.summaryMetadata,
	)

	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := newRouter(cfg, deps)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := persistence.CloseDB(deps.db); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
