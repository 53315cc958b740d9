package board

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

// abortWrites installs a trigger that fails matching writes and returns a
// func that removes it
func (f *fixture) abortWrites(t *testing.T, name, when string) func() {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.ExecContext(ctx,
		fmt.Sprintf(`CREATE TRIGGER %s %s BEGIN SELECT RAISE(ABORT, 'disk I/O error'); END`, name, when))
	require.NoError(t, err)
	return func() {
		_, err := f.db.ExecContext(ctx, `DROP TRIGGER `+name)
		require.NoError(t, err)
	}
}

// flakyLabels fails GetAllLabels while fail is set
type flakyLabels struct {
	labelservice.Service
	fail atomic.Bool
}

func (l *flakyLabels) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	if l.fail.Load() {
		return nil, errors.New("database is locked")
	}
	return l.Service.GetAllLabels(ctx)
}

func TestAdd_PersistenceFailureKeepsSnapshot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.add(t, "existing")
	before := f.ctrl.Board()
	restore := f.abortWrites(t, "fail_task_labels", `BEFORE INSERT ON task_labels`)

	in := f.ctrl.NewInput()
	in.Text = "lost"
	task, err := f.ctrl.Add(ctx, in)
	require.ErrorIs(t, err, models.ErrPersistence)
	assert.NotErrorIs(t, err, ErrStaleSnapshot)
	assert.Nil(t, task)
	assert.Equal(t, "lost", in.Text, "the form keeps its text")
	assert.Equal(t, before, f.ctrl.Board())

	all, err := f.tasks.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "nothing committed")

	restore()
	task, err = f.ctrl.Add(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, 2, f.ctrl.Board().Len())
}

func TestDrop_PersistenceFailureKeepsSnapshot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	task := f.add(t, "only")
	before := f.ctrl.Board()
	restore := f.abortWrites(t, "fail_status", `BEFORE UPDATE OF status ON tasks`)

	f.ctrl.BeginDrag(task.ID)
	change, err := f.ctrl.Drop(ctx, DropEvent{Column: "done", PointerY: 5})
	require.ErrorIs(t, err, models.ErrPersistence)
	assert.Nil(t, change)
	assert.Equal(t, before, f.ctrl.Board())
	assert.Equal(t, 0, f.completions())
	_, dragging := f.ctrl.Dragging()
	assert.False(t, dragging)

	stored, err := f.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, stored.Status)

	restore()
	change, err = f.ctrl.Move(ctx, task.ID, models.StatusDone, models.AppendPosition)
	require.NoError(t, err)
	assert.True(t, change.AllDone)
	assert.Equal(t, 1, f.completions(), "completion still armed after the failed drop")
}

func TestMove_StaleSnapshotAfterCommit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	labels := &flakyLabels{Service: f.labels}
	ctrl := New(f.tasks, labels, WithPublisher(f.bus))
	require.NoError(t, ctrl.Refresh(ctx))

	task := f.add(t, "a")
	require.NoError(t, ctrl.Refresh(ctx))

	labels.fail.Store(true)
	change, err := ctrl.Move(ctx, task.ID, models.StatusInProgress, models.AppendPosition)
	require.ErrorIs(t, err, ErrStaleSnapshot)
	require.NotNil(t, change, "the committed change is still reported")
	assert.Equal(t, models.StatusInProgress, change.Task.Status)

	stored, err := f.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, stored.Status)
	assert.Equal(t, []int{task.ID}, columnIDs(ctrl.Board(), models.StatusTodo), "snapshot not refreshed")

	labels.fail.Store(false)
	require.NoError(t, ctrl.Refresh(ctx))
	assert.Equal(t, []int{task.ID}, columnIDs(ctrl.Board(), models.StatusInProgress))
}

func TestMove_RejectedIsNotStale(t *testing.T) {
	f := setup(t)

	_, err := f.ctrl.Move(context.Background(), 404, models.StatusDone, models.AppendPosition)
	require.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.NotErrorIs(t, err, ErrStaleSnapshot)
}
