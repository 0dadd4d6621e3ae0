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

// GetUserProgressInput represents the input for reading a user's progress.
type GetUserProgressInput struct {
	UserID int64
}

// GetUserProgressOutput represents the output of reading a user's progress.
type GetUserProgressOutput struct {
	UserProgress *entity.UserProgress
}

// GetUserProgressUseCase reads a user's progress, preferring the cache.
type GetUserProgressUseCase struct {
	progressRepo adapter.UserProgressRepository
	cache        adapter.ProgressCache
}

// NewGetUserProgressUseCase creates a new GetUserProgressUseCase instance. cache may be nil.
func NewGetUserProgressUseCase(progressRepo adapter.UserProgressRepository, cache adapter.ProgressCache) *GetUserProgressUseCase {
	return &GetUserProgressUseCase{
		progressRepo: progressRepo,
		cache:        cache,
	}
}

// Execute performs the progress retrieval.
func (uc *GetUserProgressUseCase) Execute(ctx context.Context, input GetUserProgressInput) (*GetUserProgressOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("Failed to read progress cache", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetUserProgressOutput{UserProgress: cached}, nil
		}
	}

	userProgress, err := uc.progressRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserProgressNotFound) {
			return nil, domainerror.NewProgressError(
				domainerror.ErrCodeUserProgressNotFound,
				fmt.Sprintf("User with id %d has not initialized personal progress.", input.UserID),
				domainerror.ErrUserProgressNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user progress: %w", err)
	}

	// A mutation that committed after the read above has published a higher
	// version, which this fill does not overwrite.
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, userProgress); err != nil {
			slog.Warn("Failed to fill progress cache", "user_id", input.UserID, "error", err)
		}
	}

	return &GetUserProgressOutput{UserProgress: userProgress}, nil
}
