package tui

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// DRAG AND DROP
// ============================================================================

// handleMouseClick selects the card under the pointer and starts dragging it.
func (m Model) handleMouseClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.NormalMode || mouse.Button != tea.MouseLeft {
		return m, nil
	}

	column, index, taskID, ok := m.layout.cardAt(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}

	m.NotificationState.Clear()
	m.UiState.Select(column, index)
	m.Board.BeginDrag(taskID)
	return m, nil
}

// handleMouseRelease drops the dragged card into the column under the
// pointer. Releasing outside every column cancels the drag.
func (m Model) handleMouseRelease(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	taskID, dragging := m.Board.Dragging()
	if !dragging {
		return m, nil
	}

	col := m.layout.columnAt(mouse.X)
	if col == nil {
		m.Board.CancelDrag()
		return m, nil
	}

	// Releasing where the drag started is a click, not a move
	if _, _, under, ok := m.layout.cardAt(mouse.X, mouse.Y); ok && under == taskID {
		m.Board.CancelDrag()
		return m, nil
	}

	_, err := m.Board.Drop(m.Ctx, board.DropEvent{
		Column:   string(col.status),
		PointerY: float64(mouse.Y),
		Siblings: slices.Clone(col.cards),
	})
	if err != nil {
		m.reportError("Move failed", err)
		return m, nil
	}
	m.selectTask(taskID)
	return m, nil
}
