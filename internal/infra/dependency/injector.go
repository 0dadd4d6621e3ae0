// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sehatin/progress-api/config"
	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/application/usecase/goal"
	"github.com/sehatin/progress-api/internal/application/usecase/notification"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/infra/metrics"
	"github.com/sehatin/progress-api/internal/infra/server/router"
	"github.com/sehatin/progress-api/internal/integration/cache"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/controller"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/middleware"
	"github.com/sehatin/progress-api/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case progress reads always hit the database.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool, redisClient *redis.Client) *Injector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := metrics.InstrumentProgressRepository(persistence.NewUserProgressRepository(db), registry)
	notificationRepo := persistence.NewNotificationRepository(db)
	transactor := persistence.NewTransactor(db)

	var progressCache adapter.ProgressCache
	var cacheHealthChecker func() bool
	if redisClient != nil {
		progressCache = cache.NewProgressCache(redisClient, cfg.Redis.TTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	// Create progress use cases
	recalculator := progress.NewRecalculator(goalRepo, progressRepo, progressCache)
	createProgressUseCase := progress.NewCreateUserProgressUseCase(goalRepo, progressRepo, transactor, recalculator)
	getProgressUseCase := progress.NewGetUserProgressUseCase(progressRepo, progressCache)
	clearProgressUseCase := progress.NewClearUserProgressUseCase(goalRepo, progressRepo, transactor, recalculator)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, transactor, recalculator)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, transactor, recalculator)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, transactor, recalculator)

	// Create notification use cases
	createNotificationUseCase := notification.NewCreateNotificationUseCase(notificationRepo)
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	progressController := controller.NewProgressController(
		createProgressUseCase,
		getProgressUseCase,
		clearProgressUseCase,
	)

	notificationController := controller.NewNotificationController(
		createNotificationUseCase,
		listNotificationsUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		goalController,
		progressController,
		notificationController,
		middleware.NewHTTPMetrics(registry),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	return &Injector{
		Router: r,
	}
}
