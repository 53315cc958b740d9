// Package tui is the interactive board: a bubbletea program drawing the board
// controller's snapshot in three columns, with keyboard moves, mouse drag and
// drop, and an add form.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Model is the bubbletea model of the board screen
type Model struct {
	Ctx    context.Context
	Board  *board.Controller
	Labels labelservice.Service
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	LabelPickerState  *state.LabelPickerState

	// Add form
	form          *board.Input
	titleInput    textinput.Model
	labelsFocused bool

	// Board completion events
	EventChan <-chan events.Event

	// Geometry of the last rendered board, for mouse hit testing
	layout *boardLayout
	styles *styles
}

// boardEventMsg carries an event from the bus into Update
type boardEventMsg struct {
	Event events.Event
}

// taskDeletedMsg reports the end of a delayed delete
type taskDeletedMsg struct {
	TaskID int
	Err    error
}

// InitialModel creates the board screen over an open app
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = models.MaxTitleLength

	m := Model{
		Ctx:               ctx,
		Board:             a.Board,
		Labels:            a.LabelService,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		LabelPickerState:  state.NewLabelPickerState(),
		titleInput:        ti,
		layout:            &boardLayout{},
		styles:            newStyles(cfg.ColorScheme),
	}

	if publisher := a.Events(); publisher != nil {
		ch, err := publisher.Subscribe(ctx, events.EventBoardCompleted)
		if err != nil {
			slog.Warn("board completion notifications disabled", "error", err)
		} else {
			m.EventChan = ch
		}
	}

	return m
}

// Init starts listening for board events
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// Update dispatches messages by type and mode
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, nil

	case boardEventMsg:
		if msg.Event.Type == events.EventBoardCompleted {
			m.NotificationState.Add(state.LevelSuccess, "Every task is done!")
		}
		return m, m.listenForEvents()

	case taskDeletedMsg:
		if msg.Err != nil {
			m.NotificationState.Add(state.LevelError, "Delete failed: "+msg.Err.Error())
		} else {
			m.clampSelection()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())
	}

	if m.UiState.Mode() == state.AddMode && !m.labelsFocused {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.AddMode:
		return m.handleAddMode(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}

// listenForEvents waits for the next board event
func (m Model) listenForEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return boardEventMsg{Event: event}
	}
}

// ============================================================================
// Selection helpers
// ============================================================================

// currentColumn returns the selected column of the board snapshot
func (m Model) currentColumn(b *board.Board) *board.Column {
	return &b.Columns[m.UiState.SelectedColumn()]
}

// currentCard returns the selected card, or nil when the column is empty
func (m Model) currentCard(b *board.Board) *board.Card {
	col := m.currentColumn(b)
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(col.Tasks) {
		return nil
	}
	return &col.Tasks[i]
}

// selectTask moves the selection onto a visible task
func (m Model) selectTask(taskID int) {
	b := m.Board.Board()
	for ci, col := range b.Columns {
		for ti, card := range col.Tasks {
			if card.ID == taskID {
				m.UiState.Select(ci, ti)
				return
			}
		}
	}
	m.clampSelection()
}

// clampSelection keeps the selection inside the current snapshot
func (m Model) clampSelection() {
	b := m.Board.Board()
	m.UiState.ClampTask(len(m.currentColumn(&b).Tasks))
}
