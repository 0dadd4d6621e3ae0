package dto

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// CreateNotificationRequest represents the request body for notification creation.
type CreateNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ToNotificationResponse converts a domain Notification entity to its DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID,
		Message:   n.Message,
		Timestamp: n.Timestamp,
	}
}

// ToNotificationListResponse converts a list of notifications to their DTOs.
func ToNotificationListResponse(notifications []*entity.Notification) []NotificationResponse {
	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = ToNotificationResponse(n)
	}
	return response
}
