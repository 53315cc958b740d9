package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskRepo handles pure data access for tasks.
// No business logic, no events, no validation - just database operations.
type TaskRepo struct {
	db  *sql.DB
	now func() time.Time
}

// taskSelect loads a task row with its labels aggregated into one column
const taskSelect = `
	SELECT t.id, t.title, t.description, t.status, t.position, t.created_at, t.updated_at,
		(SELECT json_group_array(tl.label) FROM task_labels tl WHERE tl.task_id = t.id)
	FROM tasks t`

// ============================================================================
// Task Reads
// ============================================================================

// GetByID retrieves one task. Returns models.ErrTaskNotFound if it does not exist.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	tasks, err := r.query(ctx, r.db, taskSelect+` WHERE t.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, models.ErrTaskNotFound
	}
	return tasks[0], nil
}

// GetAll retrieves every task in creation order
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	return r.query(ctx, r.db, taskSelect+` ORDER BY t.id`)
}

// GetByStatus retrieves the tasks of one column in display order
func (r *TaskRepo) GetByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	return r.query(ctx, r.db, taskSelect+`
		WHERE t.status = ?
		ORDER BY t.position, t.id`, string(status))
}

// GetByLabel retrieves the tasks carrying a label, in creation order
func (r *TaskRepo) GetByLabel(ctx context.Context, label string) ([]*models.Task, error) {
	return r.query(ctx, r.db, taskSelect+`
		WHERE EXISTS (SELECT 1 FROM task_labels f WHERE f.task_id = t.id AND f.label = ?)
		ORDER BY t.id`, label)
}

// GetByStatusAndLabel retrieves tasks matching both filters, in display order
func (r *TaskRepo) GetByStatusAndLabel(ctx context.Context, status models.Status, label string) ([]*models.Task, error) {
	return r.query(ctx, r.db, taskSelect+`
		WHERE t.status = ?
		  AND EXISTS (SELECT 1 FROM task_labels f WHERE f.task_id = t.id AND f.label = ?)
		ORDER BY t.position, t.id`, string(status), label)
}

// GetCompletion returns the total number of tasks and how many are done
func (r *TaskRepo) GetCompletion(ctx context.Context) (total, done int, err error) {
	return completion(ctx, r.db)
}

// ============================================================================
// Task Writes
// ============================================================================

// Create inserts a todo task at the end of the todo column
func (r *TaskRepo) Create(ctx context.Context, title, description string, labels []string) (*models.Task, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var position int
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE status = ?`,
			string(models.StatusTodo),
		).Scan(&position); err != nil {
			return err
		}

		now := formatTime(r.now())
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, status, position, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			title, description, string(models.StatusTodo), position, now, now,
		)
		if err != nil {
			return err
		}

		id, err = result.LastInsertId()
		if err != nil {
			return err
		}

		return insertTaskLabels(ctx, tx, int(id), labels)
	})
	if err != nil {
		return nil, err
	}

	// Retrieve the created task to get the stored representation
	return r.GetByID(ctx, int(id))
}

// Move sets a task's status and places it at index among the other tasks of
// the destination column. A negative or out of range index appends; a
// negative index on a task already in the destination leaves its position.
func (r *TaskRepo) Move(ctx context.Context, id int, status models.Status, index int) (*models.StatusChange, error) {
	change := &models.StatusChange{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var previous string
		err := tx.QueryRowContext(ctx, `SELECT status FROM tasks WHERE id = ?`, id).Scan(&previous)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrTaskNotFound
		}
		if err != nil {
			return err
		}
		change.Previous = models.Status(previous)

		now := formatTime(r.now())

		if index < 0 && change.Previous == status {
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET updated_at = ? WHERE id = ?`, now, id,
			); err != nil {
				return err
			}
		} else {
			if err := reorderColumn(ctx, tx, id, status, index, now); err != nil {
				return err
			}
		}

		total, done, err := completion(ctx, tx)
		if err != nil {
			return err
		}
		change.AllDone = total > 0 && total == done
		return nil
	})
	if err != nil {
		return nil, err
	}

	task, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	change.Task = task
	return change, nil
}

// UpdateDetails updates a task's title and description
func (r *TaskRepo) UpdateDetails(ctx context.Context, id int, title, description string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		title, description, formatTime(r.now()), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result, models.ErrTaskNotFound)
}

// SetLabels replaces all labels of a task
func (r *TaskRepo) SetLabels(ctx context.Context, id int, labels []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE tasks SET updated_at = ? WHERE id = ?`, formatTime(r.now()), id,
		)
		if err != nil {
			return err
		}
		if err := requireAffected(result, models.ErrTaskNotFound); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM task_labels WHERE task_id = ?`, id); err != nil {
			return err
		}
		return insertTaskLabels(ctx, tx, id, labels)
	})
}

// Delete removes a task. The boolean reports whether a row was deleted.
func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (r *TaskRepo) query(ctx context.Context, q queryer, query string, args ...any) ([]*models.Task, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		var (
			task               models.Task
			status             string
			createdAt, updated string
			labels             string
		)
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &status, &task.Position,
			&createdAt, &updated, &labels,
		); err != nil {
			return nil, err
		}

		task.Status = models.Status(status)
		if task.Labels, err = decodeLabels(labels); err != nil {
			return nil, err
		}
		if task.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if task.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// reorderColumn inserts task id into status's column at index and renumbers
// every task of that column
func reorderColumn(ctx context.Context, tx *sql.Tx, id int, status models.Status, index int, now string) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM tasks WHERE status = ? AND id != ? ORDER BY position, id`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	var siblings []int
	for rows.Next() {
		var sid int
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return err
		}
		siblings = append(siblings, sid)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if index < 0 || index > len(siblings) {
		index = len(siblings)
	}

	ordered := make([]int, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:index]...)
	ordered = append(ordered, id)
	ordered = append(ordered, siblings[index:]...)

	for pos, tid := range ordered {
		if tid == id {
			_, err = tx.ExecContext(ctx,
				`UPDATE tasks SET status = ?, position = ?, updated_at = ? WHERE id = ?`,
				string(status), pos, now, tid,
			)
		} else {
			_, err = tx.ExecContext(ctx, `UPDATE tasks SET position = ? WHERE id = ?`, pos, tid)
		}
		if err != nil {
			return fmt.Errorf("failed to reposition task %d: %w", tid, err)
		}
	}
	return nil
}

func insertTaskLabels(ctx context.Context, tx *sql.Tx, taskID int, labels []string) error {
	for _, label := range normalizeLabels(labels) {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_labels (task_id, label) VALUES (?, ?)`,
			taskID, label,
		); err != nil {
			return err
		}
	}
	return nil
}

func completion(ctx context.Context, q queryer) (total, done int, err error) {
	err = q.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) FROM tasks`,
		string(models.StatusDone),
	).Scan(&total, &done)
	return total, done, err
}

// requireAffected converts a zero-row update into notFound
func requireAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
