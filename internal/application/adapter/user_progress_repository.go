package adapter

import (
	"context"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// UserProgressRepository defines the interface for user progress persistence operations.
type UserProgressRepository interface {
	// Create inserts a new progress row.
	// Returns domainerror.ErrUserProgressAlreadyExists if the user already has one.
	Create(ctx context.Context, progress *entity.UserProgress) error

	// LockUser serializes transactions that read the user's goals to derive
	// their progress. The lock is held until the surrounding transaction ends.
	LockUser(ctx context.Context, userID int64) error

	// FindByUserID retrieves the progress row of a user.
	FindByUserID(ctx context.Context, userID int64) (*entity.UserProgress, error)

	// FindByUserIDForUpdate retrieves the progress row of a user and locks it
	// until the surrounding transaction ends, where the store supports row locks.
	FindByUserIDForUpdate(ctx context.Context, userID int64) (*entity.UserProgress, error)

	// Update persists the overall percentage and version of an existing progress row.
	Update(ctx context.Context, progress *entity.UserProgress) error
}
