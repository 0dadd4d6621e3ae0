// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database and assigns its ID.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user ordered by ID.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uint) error

	// DeleteByUserID removes every goal of a user and returns how many were removed.
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}
