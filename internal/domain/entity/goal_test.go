package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal_DerivesPercentage(t *testing.T) {
	g := NewGoal(1, GoalTypeLoseWeight, 10, 4, PeriodUnitWeek, 5, false)

	require.NotNil(t, g)
	assert.Equal(t, uint(0), g.ID)
	assert.Equal(t, 50.0, g.ProgressPercentage)
	assert.False(t, g.IsCompleted)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestGoal_RefreshPercentage(t *testing.T) {
	g := NewGoal(1, GoalTypeCalorieBurned, 200, 1, PeriodUnitDay, 0, false)
	assert.Equal(t, 0.0, g.ProgressPercentage)

	g.Progress = 150
	g.RefreshPercentage()
	assert.Equal(t, 75.0, g.ProgressPercentage)

	g.Value = 0
	g.RefreshPercentage()
	assert.Equal(t, 0.0, g.ProgressPercentage)
}

func TestGoalType_IsValid(t *testing.T) {
	for _, gt := range []GoalType{GoalTypeLoseWeight, GoalTypeGainWeight, GoalTypeCalorieIntake, GoalTypeCalorieBurned} {
		assert.True(t, gt.IsValid(), gt)
	}
	assert.False(t, GoalType("run_marathon").IsValid())
	assert.False(t, GoalType("").IsValid())
}

func TestPeriodUnit_IsValid(t *testing.T) {
	for _, u := range []PeriodUnit{PeriodUnitHour, PeriodUnitDay, PeriodUnitWeek, PeriodUnitMonth, PeriodUnitYear} {
		assert.True(t, u.IsValid(), u)
	}
	assert.False(t, PeriodUnit("fortnight").IsValid())
}

func TestUserProgress_Recompute(t *testing.T) {
	p := NewUserProgress(7)
	assert.Equal(t, 0.0, p.OverallProgressPercentage)
	assert.Equal(t, int64(1), p.Version)

	goals := []*Goal{
		NewGoal(7, GoalTypeLoseWeight, 10, 4, PeriodUnitWeek, 5, false),
		NewGoal(7, GoalTypeCalorieIntake, 2000, 1, PeriodUnitDay, 2000, true),
		NewGoal(7, GoalTypeGainWeight, 4, 2, PeriodUnitMonth, 0, false),
	}
	p.Recompute(goals)
	assert.Equal(t, 50.0, p.OverallProgressPercentage)

	p.Recompute(nil)
	assert.Equal(t, 0.0, p.OverallProgressPercentage)
	assert.Equal(t, int64(3), p.Version)
}

func TestUserProgress_Reset(t *testing.T) {
	p := NewUserProgress(3)
	p.OverallProgressPercentage = 80
	p.Reset()
	assert.Equal(t, 0.0, p.OverallProgressPercentage)
	assert.Equal(t, int64(2), p.Version)
}

func TestUserProgress_IsNewerThan(t *testing.T) {
	older := NewUserProgress(4)
	newer := *older
	newer.Reset()

	assert.True(t, newer.IsNewerThan(older))
	assert.False(t, older.IsNewerThan(&newer))
	assert.False(t, older.IsNewerThan(older))
	assert.True(t, older.IsNewerThan(nil))
}

func TestNewNotification(t *testing.T) {
	n := NewNotification(9, "drink water")
	assert.Equal(t, int64(9), n.UserID)
	assert.Equal(t, "drink water", n.Message)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.False(t, n.Timestamp.IsZero())
}
