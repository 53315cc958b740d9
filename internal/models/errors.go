package models

import (
	"errors"
	"fmt"
)

// Error categories. Concrete errors below wrap one of these so callers can
// branch with errors.Is without knowing every specific error.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failed")
)

// Task errors
var (
	ErrEmptyTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTitleTooLong  = fmt.Errorf("%w: task title cannot exceed %d characters", ErrValidation, MaxTitleLength)
	ErrInvalidTaskID = fmt.Errorf("%w: invalid task ID", ErrValidation)
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrTaskNotFound  = fmt.Errorf("task %w", ErrNotFound)
)

// Label errors
var (
	ErrEmptyLabelName   = fmt.Errorf("%w: label name cannot be empty", ErrValidation)
	ErrLabelNameTooLong = fmt.Errorf("%w: label name cannot exceed %d characters", ErrValidation, MaxLabelNameLength)
	ErrLabelNameControl = fmt.Errorf("%w: label name cannot contain control characters", ErrValidation)
	ErrUnknownLabel     = fmt.Errorf("%w: unknown label", ErrValidation)
	ErrLabelNotFound    = fmt.Errorf("label %w", ErrNotFound)
	ErrLabelExists      = fmt.Errorf("%w: label already exists", ErrConflict)
)

// PersistenceError reports a failed read or write against the underlying store.
// Nothing from the failed operation was committed.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Unwrap exposes the driver error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistence) match any PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// WrapPersistence passes domain errors through and wraps anything else
// (driver failures, I/O) in a PersistenceError for op.
func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) || errors.Is(err, ErrPersistence) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
