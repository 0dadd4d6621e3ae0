package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	"github.com/sehatin/progress-api/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create stores a notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	result := dbFromContext(ctx, r.db).Create(model.NotificationFromEntity(notification))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves a user's notifications, newest first.
func (r *notificationRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToEntity()
	}
	return notifications, nil
}
