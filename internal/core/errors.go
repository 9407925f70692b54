package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrUnauthorized is returned for bad credentials or a rejected token.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports invalid user input: a missing required field,
// insufficient stock, an empty cart. The operation is aborted and no state
// is mutated; the message is safe to surface to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with Sprintf formatting.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
