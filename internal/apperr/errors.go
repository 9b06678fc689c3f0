package apperr

import "fmt"

// ValidationError rejects an input field before any state is mutated.
// Field names match the JSON payload so the frontend can highlight them.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means a referenced id does not resolve for an operation
// that requires it to exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InconsistencyError means a cascade partially completed. It indicates the
// persistence layer broke its contract and must never be swallowed.
type InconsistencyError struct {
	Op    string
	Cause error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent state during %s: %v", e.Op, e.Cause)
}

func (e *InconsistencyError) Unwrap() error {
	return e.Cause
}

func Inconsistency(op string, cause error) *InconsistencyError {
	return &InconsistencyError{Op: op, Cause: cause}
}
