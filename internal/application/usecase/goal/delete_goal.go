// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uint
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	GoalID       uint
	UserProgress *entity.UserProgress // nil when the user has no progress record
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	transactor   adapter.Transactor
	recalculator *progress.Recalculator
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, transactor adapter.Transactor, recalculator *progress.Recalculator) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:     goalRepo,
		transactor:   transactor,
		recalculator: recalculator,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	output := &DeleteGoalOutput{GoalID: input.GoalID}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing goal to learn its owner
		goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return notFoundError(input.GoalID)
			}
			return fmt.Errorf("failed to find goal: %w", err)
		}

		if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		userProgress, err := uc.recalculator.Recalculate(ctx, goal.UserID)
		if err != nil {
			return err
		}
		output.UserProgress = userProgress
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recalculator.Publish(ctx, output.UserProgress)

	return output, nil
}
