package adapter

import (
	"context"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create stores a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUserID retrieves a user's notifications, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Notification, error)
}
