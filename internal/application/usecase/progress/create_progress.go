package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// CreateUserProgressInput represents the input for progress initialization.
type CreateUserProgressInput struct {
	UserID int64
}

// CreateUserProgressOutput represents the output of progress initialization.
type CreateUserProgressOutput struct {
	UserProgress *entity.UserProgress
	Created      bool
}

// CreateUserProgressUseCase initializes a user's progress record idempotently.
type CreateUserProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.UserProgressRepository
	transactor   adapter.Transactor
	recalculator *Recalculator
}

// NewCreateUserProgressUseCase creates a new CreateUserProgressUseCase instance.
func NewCreateUserProgressUseCase(
	goalRepo adapter.GoalRepository,
	progressRepo adapter.UserProgressRepository,
	transactor adapter.Transactor,
	recalculator *Recalculator,
) *CreateUserProgressUseCase {
	return &CreateUserProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		transactor:   transactor,
		recalculator: recalculator,
	}
}

// Execute returns the existing record if present, otherwise creates one whose
// overall percentage already reflects any goals the user set beforehand.
func (uc *CreateUserProgressUseCase) Execute(ctx context.Context, input CreateUserProgressInput) (*CreateUserProgressOutput, error) {
	var output *CreateUserProgressOutput

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// Held until commit so a goal mutation either sees this row or is seen by it.
		if err := uc.progressRepo.LockUser(ctx, input.UserID); err != nil {
			return fmt.Errorf("failed to lock user progress: %w", err)
		}

		existing, err := uc.progressRepo.FindByUserID(ctx, input.UserID)
		if err == nil {
			output = &CreateUserProgressOutput{UserProgress: existing}
			return nil
		}
		if !errors.Is(err, domainerror.ErrUserProgressNotFound) {
			return fmt.Errorf("failed to find user progress: %w", err)
		}

		goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load user goals: %w", err)
		}

		userProgress := entity.NewUserProgress(input.UserID)
		userProgress.Recompute(goals)

		if err := uc.progressRepo.Create(ctx, userProgress); err != nil {
			return err
		}

		output = &CreateUserProgressOutput{UserProgress: userProgress, Created: true}
		return nil
	})

	if errors.Is(err, domainerror.ErrUserProgressAlreadyExists) {
		// A concurrent request created the row first.
		existing, findErr := uc.progressRepo.FindByUserID(ctx, input.UserID)
		if findErr != nil {
			return nil, fmt.Errorf("failed to find user progress: %w", findErr)
		}
		return &CreateUserProgressOutput{UserProgress: existing}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user progress: %w", err)
	}

	uc.recalculator.Publish(ctx, output.UserProgress)

	return output, nil
}
