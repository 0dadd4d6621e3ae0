package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// ClearUserProgressInput represents the input for clearing a user's progress.
type ClearUserProgressInput struct {
	UserID int64
}

// ClearUserProgressOutput represents the output of clearing a user's progress.
type ClearUserProgressOutput struct {
	UserProgress *entity.UserProgress
	DeletedGoals int64
}

// ClearUserProgressUseCase resets a user's progress and removes all of their goals.
type ClearUserProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.UserProgressRepository
	transactor   adapter.Transactor
	recalculator *Recalculator
}

// NewClearUserProgressUseCase creates a new ClearUserProgressUseCase instance.
func NewClearUserProgressUseCase(
	goalRepo adapter.GoalRepository,
	progressRepo adapter.UserProgressRepository,
	transactor adapter.Transactor,
	recalculator *Recalculator,
) *ClearUserProgressUseCase {
	return &ClearUserProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		transactor:   transactor,
		recalculator: recalculator,
	}
}

// Execute performs the reset. The percentage reset and the goal deletion commit together.
func (uc *ClearUserProgressUseCase) Execute(ctx context.Context, input ClearUserProgressInput) (*ClearUserProgressOutput, error) {
	var output *ClearUserProgressOutput

	// Locks are taken in the order goal mutations take them: goal rows, then
	// the user lock, then the progress row.
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.progressRepo.FindByUserID(ctx, input.UserID); err != nil {
			return uc.wrapFindError(input.UserID, err)
		}

		deleted, err := uc.goalRepo.DeleteByUserID(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to delete user goals: %w", err)
		}

		if err := uc.progressRepo.LockUser(ctx, input.UserID); err != nil {
			return fmt.Errorf("failed to lock user progress: %w", err)
		}

		userProgress, err := uc.progressRepo.FindByUserIDForUpdate(ctx, input.UserID)
		if err != nil {
			return uc.wrapFindError(input.UserID, err)
		}

		userProgress.Reset()
		if err := uc.progressRepo.Update(ctx, userProgress); err != nil {
			return fmt.Errorf("failed to reset user progress: %w", err)
		}

		output = &ClearUserProgressOutput{
			UserProgress: userProgress,
			DeletedGoals: deleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recalculator.Publish(ctx, output.UserProgress)

	return output, nil
}

func (uc *ClearUserProgressUseCase) wrapFindError(userID int64, err error) error {
	if errors.Is(err, domainerror.ErrUserProgressNotFound) {
		return domainerror.NewProgressError(
			domainerror.ErrCodeUserProgressNotFound,
			fmt.Sprintf("User with id %d has not initialized personal progress.", userID),
			domainerror.ErrUserProgressNotFound,
		)
	}
	return fmt.Errorf("failed to find user progress: %w", err)
}
