package model

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// UserProgressModel represents the user_progress table in the database.
// The user ID is the primary key, so a second row for the same user is rejected.
type UserProgressModel struct {
	UserID                    int64     `gorm:"primaryKey;autoIncrement:false"`
	OverallProgressPercentage float64   `gorm:"not null;default:0"`
	Version                   int64     `gorm:"not null;default:1"`
	CreatedAt                 time.Time `gorm:"not null"`
	UpdatedAt                 time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserProgressModel.
func (UserProgressModel) TableName() string {
	return "user_progress"
}

// ToEntity converts a UserProgressModel to a domain UserProgress entity.
func (m *UserProgressModel) ToEntity() *entity.UserProgress {
	return &entity.UserProgress{
		UserID:                    m.UserID,
		OverallProgressPercentage: m.OverallProgressPercentage,
		Version:                   m.Version,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// UserProgressFromEntity creates a UserProgressModel from a domain UserProgress entity.
func UserProgressFromEntity(p *entity.UserProgress) *UserProgressModel {
	return &UserProgressModel{
		UserID:                    p.UserID,
		OverallProgressPercentage: p.OverallProgressPercentage,
		Version:                   p.Version,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}
