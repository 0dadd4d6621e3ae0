package dto

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/entity"
)

// UserProgressResponse represents a user's overall progress in API responses.
type UserProgressResponse struct {
	UserID                    int64     `json:"user_id"`
	OverallProgressPercentage float64   `json:"overall_progress_percentage"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ToUserProgressResponse converts a domain UserProgress entity to its DTO.
func ToUserProgressResponse(p *entity.UserProgress) UserProgressResponse {
	return UserProgressResponse{
		UserID:                    p.UserID,
		OverallProgressPercentage: p.OverallProgressPercentage,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}
