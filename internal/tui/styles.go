package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

const (
	minColumnWidth = 24
	columnGap      = 1
)

// styles are the lipgloss styles of the board screen, built from the theme
type styles struct {
	scheme colors.ColorScheme

	title    lipgloss.Style
	subtle   lipgloss.Style
	column   lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	dragged  lipgloss.Style
	help     lipgloss.Style
	form     lipgloss.Style
}

func newStyles(c colors.ColorScheme) *styles {
	c.ApplyDefaults()

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.TaskBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Padding(0, 1)

	return &styles{
		scheme: c,
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),
		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.ColumnBorder)).
			Padding(0, 1).
			MarginRight(columnGap),
		card:     card,
		selected: card.BorderForeground(lipgloss.Color(c.Accent)),
		dragged:  card.Faint(true).BorderStyle(lipgloss.NormalBorder()),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)).
			Italic(true),
		form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(0, 1),
	}
}

// statusColor returns the header color of a column
func (s *styles) statusColor(status models.Status) string {
	switch status {
	case models.StatusTodo:
		return s.scheme.Todo
	case models.StatusInProgress:
		return s.scheme.InProgress
	case models.StatusDone:
		return s.scheme.Done
	default:
		return s.scheme.Normal
	}
}

func statusTitle(status models.Status) string {
	switch status {
	case models.StatusTodo:
		return "Todo"
	case models.StatusInProgress:
		return "In Progress"
	case models.StatusDone:
		return "Done"
	default:
		return string(status)
	}
}

func (s *styles) columnHeader(status models.Status) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.statusColor(status)))
}

// labelChip renders a label as "[name]" in its color
func labelChip(name, color string) string {
	if color == "" {
		color = models.DefaultLabelColor
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("[" + name + "]")
}

func (s *styles) notification(n state.Notification) string {
	color, icon := s.scheme.Accent, "•"
	switch n.Level {
	case state.LevelSuccess:
		color, icon = s.scheme.Success, "✓"
	case state.LevelError:
		color, icon = s.scheme.ErrorFg, "✗"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(icon + " " + n.Message)
}
