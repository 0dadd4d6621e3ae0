// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/sehatin/progress-api/internal/integration/entrypoint/controller"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	goalController         *controller.GoalController
	progressController     *controller.ProgressController
	notificationController *controller.NotificationController
	httpMetrics            *middleware.HTTPMetrics
	metricsHandler         http.Handler
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	progressController *controller.ProgressController,
	notificationController *controller.NotificationController,
	httpMetrics *middleware.HTTPMetrics,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:       healthController,
		goalController:         goalController,
		progressController:     progressController,
		notificationController: notificationController,
		httpMetrics:            httpMetrics,
		metricsHandler:         metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogging())
	if r.httpMetrics != nil {
		r.engine.Use(r.httpMetrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// Handler wraps the engine with CORS handling for the given origins.
func (r *Router) Handler(allowedOrigins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(r.engine)
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	goals := v1.Group("/goals")
	{
		goals.POST("/new-goal/", r.goalController.Create)
		goals.GET("/:goal_id/", r.goalController.Get)
		goals.PUT("/:goal_id/update-goal/", r.goalController.Update)
		goals.DELETE("/:goal_id/delete-goal/", r.goalController.Delete)
	}

	users := v1.Group("/:user_id")
	{
		users.GET("/goals/", r.goalController.ListByUser)
		users.POST("/create-progress/", r.progressController.Create)
		users.GET("/progress/", r.progressController.Get)
		users.DELETE("/clear-progress/", r.progressController.Clear)
		users.POST("/notifications/", r.notificationController.Create)
		users.GET("/notifications/", r.notificationController.List)
	}
}
