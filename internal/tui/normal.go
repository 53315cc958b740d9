package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevTask, "up":
		return m.handleNavigateTask(-1)
	case km.NextTask, "down":
		return m.handleNavigateTask(1)
	case km.MoveTaskLeft:
		return m.handleMoveTaskColumn(-1)
	case km.MoveTaskRight:
		return m.handleMoveTaskColumn(1)
	case km.MoveTaskUp:
		return m.handleMoveTaskUp()
	case km.MoveTaskDown:
		return m.handleMoveTaskDown()
	case km.CycleStatusFilter:
		return m.handleCycleStatusFilter()
	case km.CycleLabelFilter:
		return m.handleCycleLabelFilter()
	}

	return m, nil
}

// handleNavigateColumn moves the selection delta columns.
func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.Statuses()) {
		return m, nil
	}
	m.UiState.Select(next, 0)
	return m, nil
}

// handleNavigateTask moves the selection delta cards within the column.
func (m Model) handleNavigateTask(delta int) (tea.Model, tea.Cmd) {
	b := m.Board.Board()
	n := len(m.currentColumn(&b).Tasks)
	next := m.UiState.SelectedTask() + delta
	if next < 0 || next >= n {
		return m, nil
	}
	m.UiState.SetSelectedTask(next)
	return m, nil
}

// handleMoveTaskColumn moves the selected task to the end of the adjacent
// column. The selection follows the task.
func (m Model) handleMoveTaskColumn(delta int) (tea.Model, tea.Cmd) {
	b := m.Board.Board()
	card := m.currentCard(&b)
	if card == nil {
		return m, nil
	}

	statuses := models.Statuses()
	target := m.UiState.SelectedColumn() + delta
	if target < 0 || target >= len(statuses) {
		m.NotificationState.Add(state.LevelInfo, "No column in that direction")
		return m, nil
	}

	if _, err := m.Board.Move(m.Ctx, card.ID, statuses[target], models.AppendPosition); err != nil {
		m.reportError("Move failed", err)
		return m, nil
	}
	m.selectTask(card.ID)
	return m, nil
}

// handleMoveTaskUp places the selected task above the card over it.
func (m Model) handleMoveTaskUp() (tea.Model, tea.Cmd) {
	b := m.Board.Board()
	col := m.currentColumn(&b)
	i := m.UiState.SelectedTask()
	if i <= 0 || i >= len(col.Tasks) {
		return m, nil
	}

	card := col.Tasks[i]
	if _, err := m.Board.MoveBefore(m.Ctx, card.ID, col.Status, col.Tasks[i-1].ID); err != nil {
		m.reportError("Move failed", err)
		return m, nil
	}
	m.selectTask(card.ID)
	return m, nil
}

// handleMoveTaskDown places the card under the selected task above it.
func (m Model) handleMoveTaskDown() (tea.Model, tea.Cmd) {
	b := m.Board.Board()
	col := m.currentColumn(&b)
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(col.Tasks)-1 {
		return m, nil
	}

	card := col.Tasks[i]
	if _, err := m.Board.MoveBefore(m.Ctx, col.Tasks[i+1].ID, col.Status, card.ID); err != nil {
		m.reportError("Move failed", err)
		return m, nil
	}
	m.selectTask(card.ID)
	return m, nil
}

// handleDeleteTask deletes the selected task. The controller may wait before
// writing, so the delete runs as a command.
func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	b := m.Board.Board()
	card := m.currentCard(&b)
	if card == nil {
		return m, nil
	}

	ctx, controller, taskID := m.Ctx, m.Board, card.ID
	return m, func() tea.Msg {
		return taskDeletedMsg{TaskID: taskID, Err: controller.Delete(ctx, taskID)}
	}
}

// handleCycleStatusFilter steps the status filter through all, then each column.
func (m Model) handleCycleStatusFilter() (tea.Model, tea.Cmd) {
	options := []string{board.FilterAll}
	for _, s := range models.Statuses() {
		options = append(options, string(s))
	}

	f := m.Board.Filter()
	f.Status = nextOption(options, f.Status)
	return m.applyFilter(f)
}

// handleCycleLabelFilter steps the label filter through all, then each label.
func (m Model) handleCycleLabelFilter() (tea.Model, tea.Cmd) {
	labels, err := m.Labels.GetAllLabels(m.Ctx)
	if err != nil {
		m.reportError("Could not load labels", err)
		return m, nil
	}

	options := []string{board.FilterAll}
	for _, l := range labels {
		options = append(options, l.Name)
	}

	f := m.Board.Filter()
	f.Label = nextOption(options, f.Label)
	return m.applyFilter(f)
}

func (m Model) applyFilter(f board.Filter) (tea.Model, tea.Cmd) {
	if err := m.Board.SetFilter(m.Ctx, f); err != nil {
		m.reportError("Filter failed", err)
		return m, nil
	}
	m.UiState.SetSelectedTask(0)
	return m, nil
}

// nextOption returns the option after current, wrapping around. An unset
// current counts as the first option.
func nextOption(options []string, current string) string {
	if current == "" {
		current = options[0]
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// reportError logs err and shows it under the board. A stale snapshot means
// the change was saved.
func (m Model) reportError(action string, err error) {
	slog.Warn(action, "error", err)
	if errors.Is(err, board.ErrStaleSnapshot) {
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Saved, but the board did not reload: %v", err))
		return
	}
	m.NotificationState.Add(state.LevelError, fmt.Sprintf("%s: %v", action, err))
}
