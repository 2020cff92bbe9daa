package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nordrens-as/planning-api/docs"
	"github.com/nordrens-as/planning-api/internal/auth"
	"github.com/nordrens-as/planning-api/internal/config"
	"github.com/nordrens-as/planning-api/internal/database"
	"github.com/nordrens-as/planning-api/internal/http/handler"
	"github.com/nordrens-as/planning-api/internal/http/middleware"
	"github.com/nordrens-as/planning-api/internal/http/router"
	"github.com/nordrens-as/planning-api/internal/jobs"
	"github.com/nordrens-as/planning-api/internal/logger"
	"github.com/nordrens-as/planning-api/internal/repository"
	"github.com/nordrens-as/planning-api/internal/service"
	"go.uber.org/zap"
)

// @title Nordrens Planning API
// @version 1.0
// @description Order generation and assignment planning API for recurring cleaning subscriptions

// @contact.name API Support
// @contact.email support@nordrens.dk

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch cfg.App.Environment {
	case "production":
		docs.SwaggerInfo.Host = "planning.nordrens.dk"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	// Connect to database with retry logic
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize repositories
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, log)
	generatorService := service.NewGeneratorService(subscriptionRepo, orderRepo, notificationService, log, db, service.GeneratorOptions{
		LookaheadDays:   cfg.Planner.LookaheadDays,
		ProjectedOrders: cfg.Planner.ProjectedOrders,
		RetryAttempts:   cfg.Planner.RetryAttempts,
		RetryBackoff:    cfg.Planner.RetryBackoffDuration(),
	})
	assignmentService := service.NewAssignmentService(orderRepo, employeeRepo, notificationService, log)
	planningService := service.NewPlanningService(orderRepo, employeeRepo, log)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, orderRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	planningHandler := handler.NewPlanningHandler(generatorService, assignmentService, planningService, log)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, generatorService, log)
	orderHandler := handler.NewOrderHandler(orderRepo, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	notificationHandler := handler.NewNotificationHandler(notificationService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		planningHandler,
		subscriptionHandler,
		orderHandler,
		employeeHandler,
		notificationHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Planner.JobsEnabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterPlanningJobs(scheduler, generatorService, assignmentService, log, cfg.Planner); err != nil {
			log.Error("Failed to register planning jobs", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with planning jobs",
				zap.String("generation_cron", cfg.Planner.GenerationCron),
				zap.String("assignment_cron", cfg.Planner.AssignmentCron),
				zap.Duration("timeout", cfg.Planner.JobTimeoutDuration()),
			)
		}
	} else {
		log.Info("Planning jobs disabled",
			zap.Bool("jobs_enabled", cfg.Planner.JobsEnabled),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
