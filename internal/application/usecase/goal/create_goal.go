// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID      int64
	GoalType    entity.GoalType
	Value       float64
	Period      int
	PeriodUnit  entity.PeriodUnit
	Progress    *float64 // Optional, defaults to 0
	IsCompleted *bool    // Optional, defaults to false
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal         *entity.Goal
	UserProgress *entity.UserProgress // nil when the user has no progress record
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	transactor   adapter.Transactor
	recalculator *progress.Recalculator
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, transactor adapter.Transactor, recalculator *progress.Recalculator) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		transactor:   transactor,
		recalculator: recalculator,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	progressValue := 0.0
	if input.Progress != nil {
		progressValue = *input.Progress
	}

	isCompleted := false
	if input.IsCompleted != nil {
		isCompleted = *input.IsCompleted
	}

	goal := entity.NewGoal(
		input.UserID,
		input.GoalType,
		input.Value,
		input.Period,
		input.PeriodUnit,
		progressValue,
		isCompleted,
	)

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	output := &CreateGoalOutput{Goal: goal}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.goalRepo.Create(ctx, goal); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
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

// validateGoal checks a fully populated goal against the field contract.
func validateGoal(goal *entity.Goal) error {
	if !goal.GoalType.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be 'lose_weight', 'gain_weight', 'calorie_intake' or 'calorie_burned'",
			domainerror.ErrInvalidGoalType,
		)
	}

	if goal.Value <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalValue,
			"Goal value must be greater than 0",
			domainerror.ErrInvalidGoalValue,
		)
	}

	if goal.Period <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"Goal period must be greater than 0",
			domainerror.ErrInvalidGoalPeriod,
		)
	}

	if !goal.PeriodUnit.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidPeriodUnit,
			"period unit must be 'hour', 'day', 'week', 'month' or 'year'",
			domainerror.ErrInvalidPeriodUnit,
		)
	}

	if goal.Progress < 0 || goal.Progress > goal.Value {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidProgress,
			"Progress must be between 0 and the goal value",
			domainerror.ErrInvalidProgress,
		)
	}

	return nil
}
