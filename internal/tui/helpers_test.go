package tui

import (
	"context"
	"database/sql"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// setupTestModel creates a model over an in-memory board with a sized terminal
func setupTestModel(t *testing.T) (Model, *app.App, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	a := app.New(db)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = a.Close()
	})
	if err := a.Start(ctx, nil); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}

	m := InitialModel(ctx, a, nil)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, a, db
}

// refresh reloads the controller after tasks were written behind its back
func refresh(t *testing.T, m Model) Model {
	t.Helper()
	if err := m.Board.Refresh(context.Background()); err != nil {
		t.Fatalf("Failed to refresh board: %v", err)
	}
	m.render()
	return m
}

// update sends msg through Update and unwraps the model
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// keyPress builds the key message for a key name or a single character
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: ' ', Text: " "})
	}
	return tea.KeyPressMsg(tea.Key{Text: key, Code: []rune(key)[0]})
}

// press sends each key in turn
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = update(m, keyPress(k))
	}
	return m
}

// typeText sends text one character at a time
func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = update(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}

// cardCenter returns a screen cell inside the rendered card of taskID
func cardCenter(t *testing.T, m Model, taskID int) (x, y int) {
	t.Helper()
	for _, col := range m.layout.columns {
		for _, card := range col.cards {
			if card.TaskID == taskID {
				return col.left + 2, int(card.Top + card.Height/2)
			}
		}
	}
	t.Fatalf("Task %d is not rendered", taskID)
	return 0, 0
}

// columnLayoutFor returns the rendered geometry of a column
func columnLayoutFor(t *testing.T, m Model, status models.Status) columnLayout {
	t.Helper()
	for _, col := range m.layout.columns {
		if col.status == status {
			return col
		}
	}
	t.Fatalf("Column %s is not rendered", status)
	return columnLayout{}
}

func columnIDs(m Model, status models.Status) []int {
	b := m.Board.Board()
	col := b.Column(status)
	ids := make([]int, len(col.Tasks))
	for i, c := range col.Tasks {
		ids[i] = c.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runCmd runs a command that is expected to return promptly
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command, got nil")
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(time.Second):
		t.Fatal("Command did not return")
	}
	return nil
}
