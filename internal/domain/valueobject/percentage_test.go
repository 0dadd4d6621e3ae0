package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalPercentage(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		value    float64
		expected float64
	}{
		{name: "zero value is guarded", progress: 5, value: 0, expected: 0},
		{name: "no progress", progress: 0, value: 10, expected: 0},
		{name: "half way", progress: 5, value: 10, expected: 50},
		{name: "complete", progress: 10, value: 10, expected: 100},
		{name: "fractional", progress: 1.5, value: 2, expected: 75},
		{name: "not clamped above value", progress: 15, value: 10, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoalPercentage(tt.progress, tt.value))
		})
	}
}

func TestGoalPercentage_MatchesRatio(t *testing.T) {
	cases := [][2]float64{{1, 3}, {2, 7}, {0.1, 0.3}, {1234.5, 9999}}
	for _, c := range cases {
		assert.InDelta(t, 100*c[0]/c[1], GoalPercentage(c[0], c[1]), 1e-9)
	}
}

func TestOverallPercentage(t *testing.T) {
	tests := []struct {
		name        string
		percentages []float64
		expected    float64
	}{
		{name: "empty set", percentages: nil, expected: 0},
		{name: "single goal", percentages: []float64{42}, expected: 42},
		{name: "mean of several", percentages: []float64{0, 50, 100}, expected: 50},
		{name: "unweighted", percentages: []float64{10, 20}, expected: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverallPercentage(tt.percentages))
		})
	}
}

func TestOverallPercentage_NonTerminatingMean(t *testing.T) {
	assert.InDelta(t, 100.0/3, OverallPercentage([]float64{100, 0, 0}), 1e-9)
}
