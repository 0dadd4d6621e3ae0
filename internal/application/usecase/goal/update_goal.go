// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID      uint
	GoalType    *entity.GoalType
	Value       *float64
	Period      *int
	PeriodUnit  *entity.PeriodUnit
	Progress    *float64
	IsCompleted *bool
}

// HasChanges reports whether at least one field is set.
func (in UpdateGoalInput) HasChanges() bool {
	return in.GoalType != nil ||
		in.Value != nil ||
		in.Period != nil ||
		in.PeriodUnit != nil ||
		in.Progress != nil ||
		in.IsCompleted != nil
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal         *entity.Goal
	UserProgress *entity.UserProgress // nil when the user has no progress record
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	transactor   adapter.Transactor
	recalculator *progress.Recalculator
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, transactor adapter.Transactor, recalculator *progress.Recalculator) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		transactor:   transactor,
		recalculator: recalculator,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if !input.HasChanges() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalUpdate,
			"At least one field must be provided for update",
			domainerror.ErrEmptyGoalUpdate,
		)
	}

	var output *UpdateGoalOutput

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return notFoundError(input.GoalID)
			}
			return fmt.Errorf("failed to find goal: %w", err)
		}

		applyUpdate(goal, input)

		// Checked on the merged goal so a lone progress update is bounded by the stored value.
		if err := validateGoal(goal); err != nil {
			return err
		}

		goal.RefreshPercentage()
		goal.UpdatedAt = time.Now().UTC()

		if err := uc.goalRepo.Update(ctx, goal); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		userProgress, err := uc.recalculator.Recalculate(ctx, goal.UserID)
		if err != nil {
			return err
		}

		output = &UpdateGoalOutput{
			Goal:         goal,
			UserProgress: userProgress,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recalculator.Publish(ctx, output.UserProgress)

	return output, nil
}

func applyUpdate(goal *entity.Goal, input UpdateGoalInput) {
	if input.GoalType != nil {
		goal.GoalType = *input.GoalType
	}
	if input.Value != nil {
		goal.Value = *input.Value
	}
	if input.Period != nil {
		goal.Period = *input.Period
	}
	if input.PeriodUnit != nil {
		goal.PeriodUnit = *input.PeriodUnit
	}
	if input.Progress != nil {
		goal.Progress = *input.Progress
	}
	if input.IsCompleted != nil {
		goal.IsCompleted = *input.IsCompleted
	}
}

func notFoundError(goalID uint) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		fmt.Sprintf("Goal with id %d not found.", goalID),
		domainerror.ErrGoalNotFound,
	)
}
