package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a free-text message addressed to a user.
type Notification struct {
	ID        uuid.UUID
	UserID    int64
	Message   string
	Timestamp time.Time
}

// NewNotification creates a notification stamped with the current time.
func NewNotification(userID int64, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}
