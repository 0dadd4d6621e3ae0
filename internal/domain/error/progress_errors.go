package error

import "errors"

// User progress domain errors.
var (
	// ErrUserProgressNotFound is returned when a user has not initialized personal progress.
	ErrUserProgressNotFound = errors.New("user progress not found")

	// ErrUserProgressAlreadyExists is returned by the store when a progress row already exists.
	ErrUserProgressAlreadyExists = errors.New("user progress already exists")
)

// ProgressErrorCode defines error codes for user progress errors.
type ProgressErrorCode string

const (
	ErrCodeUserProgressNotFound ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidUserID        ProgressErrorCode = "PRG-020001"
)

// ProgressError represents a user progress error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
