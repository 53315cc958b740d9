package label

import "github.com/thenoetrevino/tablero/internal/models"

// Label-related errors
var (
	// Validation errors
	ErrEmptyName   = models.ErrEmptyLabelName
	ErrNameTooLong = models.ErrLabelNameTooLong
	ErrNameControl = models.ErrLabelNameControl

	// Business logic errors
	ErrLabelNotFound = models.ErrLabelNotFound
	ErrLabelExists   = models.ErrLabelExists
)
