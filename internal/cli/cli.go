package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
	owned  bool // App was opened here and is closed by Close
}

// NewCLI loads the config and opens the board database it names
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLIWithConfig(ctx, cfg)
}

// NewCLIWithConfig opens the board described by cfg
func NewCLIWithConfig(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources. A borrowed App is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
