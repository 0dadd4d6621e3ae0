// Package metrics instruments application adapters with Prometheus collectors.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
)

// instrumentedProgressRepository counts progress writes and tracks the last written value.
type instrumentedProgressRepository struct {
	adapter.UserProgressRepository
	updates *prometheus.CounterVec
	overall prometheus.Histogram
}

// InstrumentProgressRepository wraps repo so every Create and Update is observed.
func InstrumentProgressRepository(repo adapter.UserProgressRepository, reg prometheus.Registerer) adapter.UserProgressRepository {
	r := &instrumentedProgressRepository{
		UserProgressRepository: repo,
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "progress_api",
			Name:      "user_progress_writes_total",
			Help:      "User progress writes by operation and outcome.",
		}, []string{"operation", "outcome"}),
		overall: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "progress_api",
			Name:      "user_progress_overall_percentage",
			Help:      "Distribution of persisted overall progress percentages.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
	}
	reg.MustRegister(r.updates, r.overall)
	return r
}

// Create implements adapter.UserProgressRepository.
func (r *instrumentedProgressRepository) Create(ctx context.Context, progress *entity.UserProgress) error {
	err := r.UserProgressRepository.Create(ctx, progress)
	r.observe("create", progress, err)
	return err
}

// Update implements adapter.UserProgressRepository.
func (r *instrumentedProgressRepository) Update(ctx context.Context, progress *entity.UserProgress) error {
	err := r.UserProgressRepository.Update(ctx, progress)
	r.observe("update", progress, err)
	return err
}

func (r *instrumentedProgressRepository) observe(operation string, progress *entity.UserProgress, err error) {
	if err != nil {
		r.updates.WithLabelValues(operation, "error").Inc()
		return
	}
	r.updates.WithLabelValues(operation, "ok").Inc()
	r.overall.Observe(progress.OverallProgressPercentage)
}
