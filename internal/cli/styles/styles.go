package styles

import (
	"strconv"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board styles
	ColumnWidth   = 32
	ColumnStyles  map[models.Status]lipgloss.Style
	ColumnHeaders map[models.Status]lipgloss.Style
	TaskStyle     lipgloss.Style

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Labels:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyles = make(map[models.Status]lipgloss.Style, 3)
	ColumnHeaders = make(map[models.Status]lipgloss.Style, 3)
	for _, status := range models.Statuses() {
		ColumnStyles[status] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.ColumnBorder)).
			Padding(0, 1).
			Width(ColumnWidth)
		ColumnHeaders[status] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(StatusColor(status)))
	}

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.TaskBorder)).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusColor returns the scheme color of a status column
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusTodo:
		return scheme.Todo
	case models.StatusInProgress:
		return scheme.InProgress
	case models.StatusDone:
		return scheme.Done
	default:
		return scheme.Normal
	}
}

// StatusTitle returns the column heading of a status
func StatusTitle(status models.Status) string {
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

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderLabelChip renders a label as "[name]" with the label's color
func RenderLabelChip(name, color string) string {
	if color == "" {
		color = models.DefaultLabelColor
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render("[" + name + "]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderColumn draws one board column with its rendered task cards
func RenderColumn(status models.Status, cards []string) string {
	var content strings.Builder
	content.WriteString(ColumnHeaders[status].Render(StatusTitle(status)))
	content.WriteString(SubtitleStyle.Render(" (" + strconv.Itoa(len(cards)) + ")"))
	content.WriteString("\n")

	if len(cards) == 0 {
		content.WriteString(SubtitleStyle.Italic(true).Render("No tasks"))
	}
	for _, card := range cards {
		content.WriteString("\n")
		content.WriteString(TaskStyle.Render(card))
	}

	return ColumnStyles[status].Render(content.String())
}

// RenderBoard lays columns out side by side
func RenderBoard(columns ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a task description as terminal markdown. The raw
// text is returned when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
