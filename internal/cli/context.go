package cli

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "tablero.app"

// WithApp returns a context carrying an already opened App. Commands run
// with it use that App instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or opens a
// new one from the user's config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default(), ctx: ctx}, nil
	}
	return NewCLI(ctx)
}
