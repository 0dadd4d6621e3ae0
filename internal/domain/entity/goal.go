// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/valueobject"
)

// GoalType represents what a goal measures.
type GoalType string

const (
	GoalTypeLoseWeight    GoalType = "lose_weight"
	GoalTypeGainWeight    GoalType = "gain_weight"
	GoalTypeCalorieIntake GoalType = "calorie_intake"
	GoalTypeCalorieBurned GoalType = "calorie_burned"
)

// IsValid reports whether t is a known goal type.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeLoseWeight, GoalTypeGainWeight, GoalTypeCalorieIntake, GoalTypeCalorieBurned:
		return true
	}
	return false
}

// PeriodUnit is the unit of a goal's period.
type PeriodUnit string

const (
	PeriodUnitHour  PeriodUnit = "hour"
	PeriodUnitDay   PeriodUnit = "day"
	PeriodUnitWeek  PeriodUnit = "week"
	PeriodUnitMonth PeriodUnit = "month"
	PeriodUnitYear  PeriodUnit = "year"
)

// IsValid reports whether u is a known period unit.
func (u PeriodUnit) IsValid() bool {
	switch u {
	case PeriodUnitHour, PeriodUnitDay, PeriodUnitWeek, PeriodUnitMonth, PeriodUnitYear:
		return true
	}
	return false
}

// Goal represents a numeric target a user is working towards.
type Goal struct {
	ID                 uint
	UserID             int64
	GoalType           GoalType
	Value              float64
	Period             int
	PeriodUnit         PeriodUnit
	Progress           float64
	ProgressPercentage float64
	IsCompleted        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewGoal creates a new Goal entity with its percentage already derived.
// The ID is assigned by the store.
func NewGoal(userID int64, goalType GoalType, value float64, period int, unit PeriodUnit, progress float64, isCompleted bool) *Goal {
	now := time.Now().UTC()

	g := &Goal{
		UserID:      userID,
		GoalType:    goalType,
		Value:       value,
		Period:      period,
		PeriodUnit:  unit,
		Progress:    progress,
		IsCompleted: isCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	g.RefreshPercentage()
	return g
}

// RefreshPercentage recomputes ProgressPercentage from Progress and Value.
func (g *Goal) RefreshPercentage() {
	g.ProgressPercentage = valueobject.GoalPercentage(g.Progress, g.Value)
}
