package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// ADD FORM
// ============================================================================

// handleAddTask opens the add form with the default label preselected.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	labels, err := m.Labels.GetAllLabels(m.Ctx)
	if err != nil {
		m.reportError("Could not load labels", err)
		return m, nil
	}

	m.form = m.Board.NewInput()
	m.LabelPickerState.Reset(labels, m.form.Labels)
	m.labelsFocused = false
	m.titleInput.Reset()

	m.UiState.SetMode(state.AddMode)
	return m, m.titleInput.Focus()
}

// handleAddMode handles keys while the add form is open.
func (m Model) handleAddMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "enter":
		return m.submitForm()
	case m.Config.KeyMappings.ToggleLabels:
		m.labelsFocused = !m.labelsFocused
		if m.labelsFocused {
			m.titleInput.Blur()
			return m, nil
		}
		return m, m.titleInput.Focus()
	}

	if m.labelsFocused {
		switch msg.String() {
		case "up", "k":
			m.LabelPickerState.MoveUp()
		case "down", "j":
			m.LabelPickerState.MoveDown()
		case "space", " ", "x":
			m.LabelPickerState.Toggle()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// submitForm adds the task. A blank title keeps the form open without an
// error; a rejected task keeps the form and shows why.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.form.Text = m.titleInput.Value()
	m.form.Labels = m.LabelPickerState.SelectedNames()

	task, err := m.Board.Add(m.Ctx, m.form)
	if err != nil && task == nil {
		m.reportError("Add failed", err)
		return m, nil
	}
	if task == nil {
		return m, nil
	}

	m.closeForm()
	if err != nil {
		m.reportError("Add failed", err)
	} else {
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Added task #%d", task.ID))
	}
	m.selectTask(task.ID)
	return m, nil
}

func (m *Model) closeForm() {
	m.titleInput.Blur()
	m.titleInput.Reset()
	m.labelsFocused = false
	m.form = nil
	m.UiState.SetMode(state.NormalMode)
}
