package argbind

import (
	"errors"
	"fmt"
)

// UsageError reports misuse of the argbind API itself: duplicate command
// names, registration after Parse, Run before Parse. These are
// programmer errors rather than input errors, so they are delivered by
// panic instead of an error return (the stdlib flag package panics on
// duplicate registration for the same reason).
type UsageError struct {
	// Op is the API call that was misused.
	Op string

	// Detail describes the misuse.
	Detail string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("argbind: %s: %s", e.Op, e.Detail)
}

// ConversionError reports a raw argument that could not be parsed into
// the target scalar type of a value binding.
type ConversionError struct {
	// Raw is the offending argument as it appeared on the command line.
	Raw string

	// Type names the target scalar type.
	Type string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Raw, e.Type)
}

// InvalidValueError reports a value that converted cleanly but was
// rejected by the binding's restrictor.
type InvalidValueError struct {
	// Raw is the offending argument as it appeared on the command line.
	Raw string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q", e.Raw)
}

// ArityError reports a command invoked with fewer arguments than its
// declared arity. Excess arguments are only a warning, never an
// ArityError.
type ArityError struct {
	// Command is the primary name of the affected command.
	Command string

	// Want is the declared arity.
	Want int

	// Got is the number of arguments actually supplied.
	Got int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: too few arguments (%d), expects %d", e.Command, e.Got, e.Want)
}

// IsConversionError reports whether err is a ConversionError.
// Uses errors.As to handle wrapped errors.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}

// IsInvalidValueError reports whether err is an InvalidValueError.
// Uses errors.As to handle wrapped errors.
func IsInvalidValueError(err error) bool {
	var ie *InvalidValueError
	return errors.As(err, &ie)
}

// IsArityError reports whether err is an ArityError.
// Uses errors.As to handle wrapped errors.
func IsArityError(err error) bool {
	var ae *ArityError
	return errors.As(err, &ae)
}
