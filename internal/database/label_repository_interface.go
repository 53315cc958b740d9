package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelReader defines read operations for labels.
type LabelReader interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabelByName(ctx context.Context, name string) (*models.Label, error)
	MissingLabels(ctx context.Context, names []string) ([]string, error)
}

// LabelWriter defines write operations for labels.
type LabelWriter interface {
	CreateLabel(ctx context.Context, name, color string) (*models.Label, error)
	DeleteLabel(ctx context.Context, name string) error
	SeedLabels(ctx context.Context, labels []models.Label) (int, error)
}

// LabelRepository combines all label-related operations.
type LabelRepository interface {
	LabelReader
	LabelWriter
}
