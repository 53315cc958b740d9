package board

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

// Option configures a Controller
type Option func(*Controller)

// WithDeleteDelay waits d before a delete is written
func WithDeleteDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.deleteDelay = d
		}
	}
}

// WithDefaultLabel sets the label preselected on a fresh Input
func WithDefaultLabel(name string) Option {
	return func(c *Controller) {
		c.defaultLabel = name
	}
}

// WithPublisher sets where the completion event is published
func WithPublisher(p events.EventPublisher) Option {
	return func(c *Controller) {
		c.publisher = p
	}
}

// WithLogger sets the controller's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
