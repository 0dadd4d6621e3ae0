package adapter

import (
	"context"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// ProgressCache stores recent user progress snapshots.
type ProgressCache interface {
	// Get returns the cached snapshot, or nil on a miss.
	Get(ctx context.Context, userID int64) (*entity.UserProgress, error)

	// Set stores a snapshot unless the cache already holds the same or a
	// newer version for that user.
	Set(ctx context.Context, progress *entity.UserProgress) error
}
