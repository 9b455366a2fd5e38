// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors. Interactive prompts recover from these by asking again.
	ErrInvalidInput = errors.New("invalid input")

	// Generation errors.
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidPreset = errors.New("invalid preset")

	// Output errors.
	ErrFileWrite            = errors.New("file write failed")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRecoverable reports whether an error only affects a single output step
// and should not stop the run.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrFileWrite) ||
		errors.Is(err, ErrClipboardUnavailable) ||
		errors.Is(err, ErrInvalidInput)
}
