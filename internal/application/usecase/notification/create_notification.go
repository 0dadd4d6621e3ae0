// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

// CreateNotificationInput represents the input for notification creation.
type CreateNotificationInput struct {
	UserID  int64
	Message string
}

// CreateNotificationOutput represents the output of notification creation.
type CreateNotificationOutput struct {
	Notification *entity.Notification
}

// CreateNotificationUseCase stores a notification for a user.
type CreateNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewCreateNotificationUseCase creates a new CreateNotificationUseCase instance.
func NewCreateNotificationUseCase(notificationRepo adapter.NotificationRepository) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the notification creation. The timestamp is assigned here, never by the caller.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, input CreateNotificationInput) (*CreateNotificationOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeEmptyNotificationMessage,
			"notification message must not be empty",
			domainerror.ErrEmptyNotificationMessage,
		)
	}

	n := entity.NewNotification(input.UserID, message)
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return &CreateNotificationOutput{
		Notification: n,
	}, nil
}
