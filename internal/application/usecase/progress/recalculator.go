// Package progress contains user progress use cases and the recalculation step
// shared by every goal mutation.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// Recalculator recomputes a user's overall progress from the full set of their goals.
type Recalculator struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.UserProgressRepository
	cache        adapter.ProgressCache
}

// NewRecalculator creates a new Recalculator. cache may be nil.
func NewRecalculator(goalRepo adapter.GoalRepository, progressRepo adapter.UserProgressRepository, cache adapter.ProgressCache) *Recalculator {
	return &Recalculator{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		cache:        cache,
	}
}

// Recalculate recomputes and persists the overall percentage of a user.
// It returns (nil, nil) when the user has not initialized a progress record.
// Call it with a transactional context so the read of the goal set and the
// write of the aggregate see the same state. The user lock orders it against
// a concurrent progress initialization that has not committed yet.
func (r *Recalculator) Recalculate(ctx context.Context, userID int64) (*entity.UserProgress, error) {
	if err := r.progressRepo.LockUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to lock user progress: %w", err)
	}

	userProgress, err := r.progressRepo.FindByUserIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserProgressNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user progress: %w", err)
	}

	goals, err := r.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user goals: %w", err)
	}

	userProgress.Recompute(goals)

	if err := r.progressRepo.Update(ctx, userProgress); err != nil {
		return nil, fmt.Errorf("failed to update user progress: %w", err)
	}

	return userProgress, nil
}

// Publish refreshes the cached snapshot after the transaction that produced it committed.
// The cache keeps the highest version, so publishes arriving out of order are harmless.
// Cache failures are logged and otherwise ignored.
func (r *Recalculator) Publish(ctx context.Context, userProgress *entity.UserProgress) {
	if r.cache == nil || userProgress == nil {
		return
	}

	if err := r.cache.Set(ctx, userProgress); err != nil {
		slog.Warn("Failed to refresh progress cache",
			"user_id", userProgress.UserID,
			"error", err,
		)
	}
}
