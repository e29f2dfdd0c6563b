// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInputFormat = errors.New("malformed input")

	// Parameter errors.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBucketRangeExceeded reports a value that matches none of a set of
	// predefined ranges. Bucketing is not part of the miner; the error is
	// kept so collaborators share one taxonomy.
	ErrBucketRangeExceeded = errors.New("value outside expected ranges")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
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

// InvalidParameter wraps ErrInvalidParameter with the parameter name and reason.
func InvalidParameter(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParameter, name, fmt.Sprintf(format, args...))
}
