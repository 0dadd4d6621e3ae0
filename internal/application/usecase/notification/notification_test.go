package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatin/progress-api/internal/application/adapter/adaptertest"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

func TestCreateNotification(t *testing.T) {
	repo := adaptertest.NewNotificationStore()
	uc := NewCreateNotificationUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateNotificationInput{UserID: 1, Message: "  log your lunch  "})
	require.NoError(t, err)
	assert.Equal(t, "log your lunch", out.Notification.Message)
	assert.Equal(t, int64(1), out.Notification.UserID)
	assert.False(t, out.Notification.Timestamp.IsZero())
}

func TestCreateNotification_EmptyMessage(t *testing.T) {
	uc := NewCreateNotificationUseCase(adaptertest.NewNotificationStore())

	_, err := uc.Execute(context.Background(), CreateNotificationInput{UserID: 1, Message: "   "})
	var notificationErr *domainerror.NotificationError
	require.True(t, errors.As(err, &notificationErr))
	assert.Equal(t, domainerror.ErrCodeEmptyNotificationMessage, notificationErr.Code)
}

func TestListNotifications_NewestFirst(t *testing.T) {
	repo := adaptertest.NewNotificationStore()
	create := NewCreateNotificationUseCase(repo)
	list := NewListNotificationsUseCase(repo)
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		_, err := create.Execute(ctx, CreateNotificationInput{UserID: 2, Message: msg})
		require.NoError(t, err)
	}
	_, err := create.Execute(ctx, CreateNotificationInput{UserID: 3, Message: "other"})
	require.NoError(t, err)

	out, err := list.Execute(ctx, ListNotificationsInput{UserID: 2})
	require.NoError(t, err)
	require.Len(t, out.Notifications, 3)
	assert.Equal(t, "third", out.Notifications[0].Message)
	assert.Equal(t, "first", out.Notifications[2].Message)

	empty, err := list.Execute(ctx, ListNotificationsInput{UserID: 99})
	require.NoError(t, err)
	assert.Empty(t, empty.Notifications)
}
