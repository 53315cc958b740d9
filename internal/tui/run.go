package tui

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// Run shows the interactive board until the user quits or ctx is cancelled
func Run(ctx context.Context, a *app.App, cfg *config.Config) error {
	model := InitialModel(ctx, a, cfg)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("board ui: %w", err)
	}
	return nil
}
