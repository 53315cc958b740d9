package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the board screen
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render draws the screen and records the board geometry
func (m Model) render() string {
	b := m.Board.Board()
	header := m.renderHeader(&b)

	if m.UiState.Mode() == state.HelpMode {
		return header + "\n\n" + m.renderHelp()
	}

	boardTop := lipgloss.Height(header) + 1
	sections := []string{header, "", m.renderColumns(&b, boardTop)}

	if m.UiState.Mode() == state.AddMode {
		sections = append(sections, m.renderForm())
	}
	for _, n := range m.NotificationState.All() {
		sections = append(sections, m.styles.notification(n))
	}

	km := m.Config.KeyMappings
	sections = append(sections, m.styles.help.Render(fmt.Sprintf(
		"%s add • %s delete • %s/%s move • %s filter • %s help • %s quit",
		km.AddTask, km.DeleteTask, km.MoveTaskLeft, km.MoveTaskRight,
		km.CycleStatusFilter, km.ShowHelp, km.Quit)))

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader(b *board.Board) string {
	progress := fmt.Sprintf("%d/%d done", b.Done, b.Total)
	line := m.styles.title.Render("Tablero") + "  " + m.styles.subtle.Render(progress)

	if b.Filter.IsActive() {
		status, label := b.Filter.Status, b.Filter.Label
		if status == "" {
			status = board.FilterAll
		}
		if label == "" {
			label = board.FilterAll
		}
		line += "  " + m.styles.subtle.Render(fmt.Sprintf("filter: status=%s label=%s", status, label))
	}
	return line
}

// renderColumns lays the three columns side by side. top is the screen row
// of the columns' top border.
func (m Model) renderColumns(b *board.Board, top int) string {
	width := max(minColumnWidth, m.UiState.Width()/len(b.Columns)-columnGap)
	// Border and padding take four cells
	cardWidth := width - 4

	draggedID, _ := m.Board.Dragging()

	rendered := make([]string, len(b.Columns))
	layout := make([]columnLayout, len(b.Columns))
	left := 0

	for ci, col := range b.Columns {
		heading := m.styles.columnHeader(col.Status).Render(statusTitle(col.Status)) +
			m.styles.subtle.Render(fmt.Sprintf(" (%d)", len(col.Tasks)))
		parts := []string{heading}

		// Cards start under the top border and the heading
		y := top + 1 + lipgloss.Height(heading)
		cards := make([]board.Sibling, 0, len(col.Tasks))

		if len(col.Tasks) == 0 {
			parts = append(parts, m.styles.subtle.Italic(true).Render("No tasks"))
		}
		for ti, card := range col.Tasks {
			selected := ci == m.UiState.SelectedColumn() && ti == m.UiState.SelectedTask()
			box := m.renderCard(card, cardWidth, selected, card.ID == draggedID)
			h := lipgloss.Height(box)
			cards = append(cards, board.Sibling{TaskID: card.ID, Top: float64(y), Height: float64(h)})
			y += h
			parts = append(parts, box)
		}

		rendered[ci] = m.styles.column.Width(width).Render(strings.Join(parts, "\n"))
		w := lipgloss.Width(rendered[ci])
		layout[ci] = columnLayout{status: col.Status, left: left, right: left + w, cards: cards}
		left += w
	}

	m.layout.columns = layout
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderCard(card board.Card, width int, selected, dragged bool) string {
	style := m.styles.card
	switch {
	case dragged:
		style = m.styles.dragged
	case selected:
		style = m.styles.selected
	}

	content := card.Title
	if len(card.Labels) > 0 {
		chips := make([]string, len(card.Labels))
		for i, l := range card.Labels {
			chips[i] = labelChip(l.Name, l.Color)
		}
		content += "\n" + strings.Join(chips, " ")
	}
	return style.Width(width).Render(content)
}

func (m Model) renderForm() string {
	var content strings.Builder
	content.WriteString(m.styles.title.Render("New task") + "\n")
	content.WriteString(m.titleInput.View() + "\n\n")

	hint := "labels (" + m.Config.KeyMappings.ToggleLabels + ")"
	content.WriteString(m.styles.subtle.Render(hint) + "\n")

	for i, item := range m.LabelPickerState.Items() {
		cursor := "  "
		if m.labelsFocused && i == m.LabelPickerState.Cursor() {
			cursor = "> "
		}
		checkbox := "[ ]"
		if item.Selected {
			checkbox = "[x]"
		}
		content.WriteString(cursor + checkbox + " " + labelChip(item.Label.Name, item.Label.Color) + "\n")
	}

	content.WriteString(m.styles.subtle.Render("enter save • esc cancel"))
	return m.styles.form.Render(content.String())
}

func (m Model) renderHelp() string {
	km := m.Config.KeyMappings
	rows := [][2]string{
		{km.PrevColumn + "/" + km.NextColumn, "previous / next column"},
		{km.PrevTask + "/" + km.NextTask, "previous / next task"},
		{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task to the previous / next column"},
		{km.MoveTaskUp + "/" + km.MoveTaskDown, "move task up / down"},
		{km.AddTask, "add a task"},
		{km.DeleteTask, "delete the selected task"},
		{km.CycleStatusFilter, "cycle the status filter"},
		{km.CycleLabelFilter, "cycle the label filter"},
		{"mouse", "drag a card onto a column to move it"},
		{km.Quit, "quit"},
	}

	var content strings.Builder
	for _, row := range rows {
		content.WriteString(m.styles.title.Render(fmt.Sprintf("%-8s", row[0])) + " " + row[1] + "\n")
	}
	content.WriteString("\n" + m.styles.help.Render("press any key to return"))
	return content.String()
}
