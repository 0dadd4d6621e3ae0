package entity

import (
	"time"

	"github.com/sehatin/progress-api/internal/domain/valueobject"
)

// UserProgress is the per-user aggregate of goal completion.
// There is at most one record per user.
// Version grows on every change so snapshots of the same user can be ordered.
type UserProgress struct {
	UserID                    int64
	OverallProgressPercentage float64
	Version                   int64
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// NewUserProgress creates an empty progress record for a user.
func NewUserProgress(userID int64) *UserProgress {
	now := time.Now().UTC()

	return &UserProgress{
		UserID:    userID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Recompute sets the overall percentage to the mean of the given goals' percentages.
func (p *UserProgress) Recompute(goals []*Goal) {
	percentages := make([]float64, len(goals))
	for i, g := range goals {
		percentages[i] = g.ProgressPercentage
	}

	p.OverallProgressPercentage = valueobject.OverallPercentage(percentages)
	p.touch()
}

// Reset clears the overall percentage.
func (p *UserProgress) Reset() {
	p.OverallProgressPercentage = 0
	p.touch()
}

func (p *UserProgress) touch() {
	p.Version++
	p.UpdatedAt = time.Now().UTC()
}

// IsNewerThan reports whether p reflects a later change than other.
func (p *UserProgress) IsNewerThan(other *UserProgress) bool {
	return other == nil || p.Version > other.Version
}
