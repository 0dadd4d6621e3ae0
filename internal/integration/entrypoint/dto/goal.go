// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	UserID      int64    `json:"user_id" binding:"required,gt=0"`
	GoalType    string   `json:"goal_type" binding:"required,oneof=lose_weight gain_weight calorie_intake calorie_burned"`
	Value       float64  `json:"value" binding:"required,gt=0"`
	Period      int      `json:"period" binding:"required,gt=0"`
	PeriodUnit  string   `json:"period_unit" binding:"required,oneof=hour day week month year"`
	Progress    *float64 `json:"progress,omitempty" binding:"omitempty,gte=0"`
	IsCompleted *bool    `json:"is_completed,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
// Omitted fields are left unchanged.
type UpdateGoalRequest struct {
	GoalType    *string  `json:"goal_type,omitempty" binding:"omitempty,oneof=lose_weight gain_weight calorie_intake calorie_burned"`
	Value       *float64 `json:"value,omitempty" binding:"omitempty,gt=0"`
	Period      *int     `json:"period,omitempty" binding:"omitempty,gt=0"`
	PeriodUnit  *string  `json:"period_unit,omitempty" binding:"omitempty,oneof=hour day week month year"`
	Progress    *float64 `json:"progress,omitempty" binding:"omitempty,gte=0"`
	IsCompleted *bool    `json:"is_completed,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 uint      `json:"id"`
	UserID             int64     `json:"user_id"`
	GoalType           string    `json:"goal_type"`
	Value              float64   `json:"value"`
	Period             int       `json:"period"`
	PeriodUnit         string    `json:"period_unit"`
	Progress           float64   `json:"progress"`
	ProgressPercentage float64   `json:"progress_percentage"`
	IsCompleted        bool      `json:"is_completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                 g.ID,
		UserID:             g.UserID,
		GoalType:           string(g.GoalType),
		Value:              g.Value,
		Period:             g.Period,
		PeriodUnit:         string(g.PeriodUnit),
		Progress:           g.Progress,
		ProgressPercentage: g.ProgressPercentage,
		IsCompleted:        g.IsCompleted,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to their DTOs.
func ToGoalListResponse(goals []*entity.Goal) []GoalResponse {
	response := make([]GoalResponse, len(goals))
	for i, g := range goals {
		response[i] = ToGoalResponse(g)
	}
	return response
}
