package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nordrens-as/planning-api/internal/auth"
	"github.com/nordrens-as/planning-api/internal/config"
	"github.com/nordrens-as/planning-api/internal/database"
	"github.com/nordrens-as/planning-api/internal/http/handler"
	"github.com/nordrens-as/planning-api/internal/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/nordrens-as/planning-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	db                  *gorm.DB
	authMiddleware      *auth.Middleware
	rateLimiter         *middleware.RateLimiter
	planningHandler     *handler.PlanningHandler
	subscriptionHandler *handler.SubscriptionHandler
	orderHandler        *handler.OrderHandler
	employeeHandler     *handler.EmployeeHandler
	notificationHandler *handler.NotificationHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	planningHandler *handler.PlanningHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	orderHandler *handler.OrderHandler,
	employeeHandler *handler.EmployeeHandler,
	notificationHandler *handler.NotificationHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		planningHandler:     planningHandler,
		subscriptionHandler: subscriptionHandler,
		orderHandler:        orderHandler,
		employeeHandler:     employeeHandler,
		notificationHandler: notificationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Prometheus metrics
	if rt.cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)

		// Planning triggers and read side
		r.Route("/planning", func(r chi.Router) {
			r.Post("/generate", rt.planningHandler.Generate)
			r.Post("/assign", rt.planningHandler.Assign)
			r.Get("/stats", rt.planningHandler.Stats)
		})

		// Subscriptions
		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", rt.subscriptionHandler.List)
			r.Post("/", rt.subscriptionHandler.Create)
			r.Get("/{id}", rt.subscriptionHandler.GetByID)
			r.Put("/{id}/status", rt.subscriptionHandler.UpdateStatus)
			r.Get("/{id}/orders", rt.subscriptionHandler.Orders)
			r.Post("/{id}/regenerate", rt.subscriptionHandler.Regenerate)
		})

		// Orders
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", rt.orderHandler.List)
			r.Get("/unassigned", rt.orderHandler.ListUnassigned)
		})

		// Employees
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Post("/", rt.employeeHandler.Create)
		})

		// Notifications
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", rt.notificationHandler.List)
			r.Put("/{id}/read", rt.notificationHandler.MarkRead)
		})
	})

	return r
}
