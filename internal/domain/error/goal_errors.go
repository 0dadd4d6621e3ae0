// Package error defines domain-specific errors for the progress tracking application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUserHasNoGoals is returned when listing goals for a user who has none.
	ErrUserHasNoGoals = errors.New("user has not set any goal")

	// ErrInvalidGoalValue is returned when the target value is zero or negative.
	ErrInvalidGoalValue = errors.New("invalid goal value")

	// ErrInvalidGoalPeriod is returned when the period is zero or negative.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrInvalidPeriodUnit is returned when the period unit is not recognised.
	ErrInvalidPeriodUnit = errors.New("invalid period unit")

	// ErrInvalidGoalType is returned when the goal type is not recognised.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidProgress is returned when progress is negative or exceeds the goal value.
	ErrInvalidProgress = errors.New("invalid progress")

	// ErrEmptyGoalUpdate is returned when an update sets no fields.
	ErrEmptyGoalUpdate = errors.New("no fields provided for update")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeGoalNotFound   GoalErrorCode = "GOL-010001"
	ErrCodeUserHasNoGoals GoalErrorCode = "GOL-010002"

	// Validation errors (02XXXX)
	ErrCodeInvalidGoalValue  GoalErrorCode = "GOL-020001"
	ErrCodeInvalidGoalPeriod GoalErrorCode = "GOL-020002"
	ErrCodeInvalidPeriodUnit GoalErrorCode = "GOL-020003"
	ErrCodeInvalidGoalType   GoalErrorCode = "GOL-020004"
	ErrCodeInvalidProgress   GoalErrorCode = "GOL-020005"
	ErrCodeInvalidGoalInput  GoalErrorCode = "GOL-020006"
	ErrCodeInvalidGoalID     GoalErrorCode = "GOL-020007"
	ErrCodeEmptyGoalUpdate   GoalErrorCode = "GOL-020008"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
