package resource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTimestamp does not wrap ErrInvalidInput; a malformed date
	// string is reported as a server failure.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// ValidationError reports a create request that lacks required fields. Fields
// always holds the complete required list, not only the missing ones.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// FieldError reports a single unacceptable value in a request body.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
