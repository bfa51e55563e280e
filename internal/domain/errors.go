package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStoreFailure      = errors.New("store failure")
	ErrDuplicateUsername = errors.New("username already exists")
)

// InputError is an ErrInvalidInput whose message is safe to show to callers.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NewInputError returns an *InputError with a formatted message.
func NewInputError(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}
