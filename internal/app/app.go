package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo database.DataStore

	// In-process event bus; nil when events are disabled
	eventClient events.EventPublisher
	ownsEvents  bool

	// Service layer (business logic)
	TaskService  taskservice.Service
	LabelService labelservice.Service

	// Board controller shared by every presentation layer
	Board *board.Controller

	logger *slog.Logger
}

// New creates a new App over an initialized database.
// The schema must already exist (see database.InitDB).
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		db:          db,
		repo:        database.NewRepository(db),
		eventClient: cfg.eventClient,
		logger:      cfg.logger,
	}
	if a.eventClient == nil && !cfg.noEvents {
		a.eventClient = events.NewBus(events.WithLogger(cfg.logger))
		a.ownsEvents = true
	}

	a.TaskService = taskservice.NewService(a.repo, a.eventClient)
	a.LabelService = labelservice.NewService(a.repo, a.eventClient)

	boardOpts := []board.Option{
		board.WithPublisher(a.eventClient),
		board.WithLogger(cfg.logger),
		board.WithDeleteDelay(cfg.deleteDelay),
	}
	if cfg.defaultLabel != "" {
		boardOpts = append(boardOpts, board.WithDefaultLabel(cfg.defaultLabel))
	}
	a.Board = board.New(a.TaskService, a.LabelService, boardOpts...)

	return a
}

// Open initializes the database named by cfg, seeds the configured labels
// into an empty board and loads the first board snapshot.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	path := cfg.Database.Path
	if path == "" {
		var err error
		path, err = database.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts = append([]Option{
		WithDeleteDelay(cfg.Board.DeleteDelay),
		WithDefaultLabel(cfg.Board.DefaultLabel),
	}, opts...)
	a := New(db, opts...)

	if err := a.Start(ctx, cfg.SeedLabels()); err != nil {
		if closeErr := a.Close(); closeErr != nil {
			a.logger.Error("error closing app", "error", closeErr)
		}
		return nil, err
	}
	return a, nil
}

// Start seeds labels (only into an empty labels table) and refreshes the
// board snapshot
func (a *App) Start(ctx context.Context, seed []models.Label) error {
	if len(seed) > 0 {
		n, err := a.LabelService.EnsureDefaults(ctx, seed)
		if err != nil {
			return fmt.Errorf("failed to seed labels: %w", err)
		}
		if n > 0 {
			a.logger.Info("seeded labels", "count", n)
		}
	}

	if err := a.Board.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	return nil
}

// Events returns the event publisher, nil when events are disabled
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close closes the event bus it created and the database
func (a *App) Close() error {
	var errs []error
	if a.ownsEvents && a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil && !errors.Is(err, events.ErrBusClosed) {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
