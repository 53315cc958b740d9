package label

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all label-related business operations
type Service interface {
	// Read operations
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabel(ctx context.Context, name string) (*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	DeleteLabel(ctx context.Context, name string) error

	// EnsureDefaults seeds the given labels when no label is defined yet
	EnsureDefaults(ctx context.Context, defaults []models.Label) (int, error)
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name  string
	Color string // Display color, stored as given. Empty means models.DefaultLabelColor
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new label service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetAllLabels retrieves every label in creation order
func (s *service) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	labels, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, models.WrapPersistence("get labels", err)
	}
	return labels, nil
}

// GetLabel retrieves one label by name
func (s *service) GetLabel(ctx context.Context, name string) (*models.Label, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	label, err := s.repo.GetLabelByName(ctx, name)
	if err != nil {
		return nil, models.WrapPersistence("get label", err)
	}
	return label, nil
}

// CreateLabel creates a new label with validation
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.DefaultLabelColor
	}

	label, err := s.repo.CreateLabel(ctx, name, color)
	if err != nil {
		return nil, models.WrapPersistence("create label", err)
	}

	s.publishLabelEvent(events.EventLabelCreated, label.Name)
	return label, nil
}

// DeleteLabel deletes a label definition. Tasks carrying the label keep it.
func (s *service) DeleteLabel(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteLabel(ctx, name); err != nil {
		return models.WrapPersistence("delete label", err)
	}

	s.publishLabelEvent(events.EventLabelDeleted, name)
	return nil
}

// EnsureDefaults seeds defaults into an empty label table and reports how
// many labels were inserted
func (s *service) EnsureDefaults(ctx context.Context, defaults []models.Label) (int, error) {
	seed := make([]models.Label, 0, len(defaults))
	for _, l := range defaults {
		name, err := validateName(l.Name)
		if err != nil {
			slog.Warn("skipping invalid default label", "name", l.Name, "error", err)
			continue
		}
		color := strings.TrimSpace(l.Color)
		if color == "" {
			color = models.DefaultLabelColor
		}
		seed = append(seed, models.Label{Name: name, Color: color})
	}

	inserted, err := s.repo.SeedLabels(ctx, seed)
	if err != nil {
		return 0, models.WrapPersistence("seed labels", err)
	}
	if inserted > 0 {
		slog.Info("seeded default labels", "count", inserted)
	}
	return inserted, nil
}

// validateName trims a label name and checks its length in characters
func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxLabelNameLength {
		return "", ErrNameTooLong
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return "", ErrNameControl
	}
	return name, nil
}

// publishLabelEvent publishes a label event if event client exists
func (s *service) publishLabelEvent(eventType events.EventType, name string) {
	events.Publish(s.eventClient, events.Event{
		Type:  eventType,
		Label: name,
	})
}
