package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is the root of every construction-time validation failure.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyResult is returned when metrics are requested over a run that produced no data.
	ErrEmptyResult = errors.New("no data")
)

// ValidationError names the offending parameter and the constraint it violated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfiguration }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Prefixed returns err with its field qualified by prefix (e.g. "inflow.").
// Errors that are not a *ValidationError are returned unchanged.
func Prefixed(prefix string, err error) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Field: prefix + ve.Field, Reason: ve.Reason}
}
