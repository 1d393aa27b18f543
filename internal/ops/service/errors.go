package service

import "fmt"

// Typed errors the handlers translate into HTTP status + envelope codes.
// Anything else that bubbles up from a service is a 500.

// ValidationError rejects malformed or out-of-policy input (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError rejects a uniqueness violation (400).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StateError rejects a mutation the record's current state forbids (400).
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func statef(format string, args ...interface{}) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError rejects an operation the caller's role does not allow (403).
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func forbiddenf(format string, args ...interface{}) error {
	return &ForbiddenError{Message: fmt.Sprintf(format, args...)}
}
