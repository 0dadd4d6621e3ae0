// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement"`
	UserID             int64     `gorm:"not null;index"`
	GoalType           string    `gorm:"type:varchar(20);not null"`
	Value              float64   `gorm:"not null"`
	Period             int       `gorm:"not null"`
	PeriodUnit         string    `gorm:"type:varchar(10);not null"`
	Progress           float64   `gorm:"not null;default:0"`
	ProgressPercentage float64   `gorm:"not null;default:0"`
	IsCompleted        bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                 m.ID,
		UserID:             m.UserID,
		GoalType:           entity.GoalType(m.GoalType),
		Value:              m.Value,
		Period:             m.Period,
		PeriodUnit:         entity.PeriodUnit(m.PeriodUnit),
		Progress:           m.Progress,
		ProgressPercentage: m.ProgressPercentage,
		IsCompleted:        m.IsCompleted,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                 goal.ID,
		UserID:             goal.UserID,
		GoalType:           string(goal.GoalType),
		Value:              goal.Value,
		Period:             goal.Period,
		PeriodUnit:         string(goal.PeriodUnit),
		Progress:           goal.Progress,
		ProgressPercentage: goal.ProgressPercentage,
		IsCompleted:        goal.IsCompleted,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}
}
