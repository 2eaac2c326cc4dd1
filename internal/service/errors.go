package service

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that
	// already belongs to a user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthorized is returned when a todo exists but belongs to a
	// different user than the one acting.
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
