package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient  events.EventPublisher
	noEvents     bool
	logger       *slog.Logger
	deleteDelay  time.Duration
	defaultLabel string
}

// WithEventPublisher sets the event publisher for the application.
// The caller keeps ownership: App.Close does not close it.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithoutEvents disables event publishing
func WithoutEvents() Option {
	return func(cfg *appConfig) {
		cfg.noEvents = true
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDeleteDelay sets the board's delete delay
func WithDeleteDelay(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.deleteDelay = d
	}
}

// WithDefaultLabel sets the label preselected for new tasks
func WithDefaultLabel(name string) Option {
	return func(cfg *appConfig) {
		cfg.defaultLabel = name
	}
}
