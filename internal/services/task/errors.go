package task

import "github.com/thenoetrevino/tablero/internal/models"

// Task-related errors. They are the shared model errors so callers can
// match either name with errors.Is.
var (
	// Validation errors
	ErrEmptyTitle    = models.ErrEmptyTitle
	ErrTitleTooLong  = models.ErrTitleTooLong
	ErrInvalidTaskID = models.ErrInvalidTaskID
	ErrInvalidStatus = models.ErrInvalidStatus
	ErrUnknownLabel  = models.ErrUnknownLabel

	// Business logic errors
	ErrTaskNotFound = models.ErrTaskNotFound
)
