package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'todo'
			CHECK (status IN ('todo', 'in_progress', 'done')),
		position INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status
		ON tasks(status, position)`,
	`CREATE TABLE IF NOT EXISTS labels (
		name TEXT PRIMARY KEY,
		color TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	// label is not a foreign key: deleting a label leaves the
	// name on its tasks
	`CREATE TABLE IF NOT EXISTS task_labels (
		task_id INTEGER NOT NULL,
		label TEXT NOT NULL,
		PRIMARY KEY (task_id, label),
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_labels_label
		ON task_labels(label)`,
}

// Migrate creates the database schema. It is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
