// Package valueobject contains domain value objects and pure calculations.
package valueobject

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// GoalPercentage returns progress as a percentage of value.
// A zero value yields 0 instead of dividing by zero. The result is not clamped.
func GoalPercentage(progress, value float64) float64 {
	if value == 0 {
		return 0
	}

	return decimal.NewFromFloat(progress).
		Div(decimal.NewFromFloat(value)).
		Mul(hundred).
		InexactFloat64()
}

// OverallPercentage returns the unweighted mean of the given percentages, or 0 for none.
func OverallPercentage(percentages []float64) float64 {
	if len(percentages) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, p := range percentages {
		sum = sum.Add(decimal.NewFromFloat(p))
	}

	return sum.Div(decimal.NewFromInt(int64(len(percentages)))).InexactFloat64()
}
