package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelRepo handles pure data access for labels
type LabelRepo struct {
	db  *sql.DB
	now func() time.Time
}

// ============================================================================
// Label Operations
// ============================================================================

// Create inserts a label. Returns models.ErrLabelExists when the name is taken.
func (r *LabelRepo) Create(ctx context.Context, name, color string) (*models.Label, error) {
	created := r.now().UTC()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		exists, err := labelExists(ctx, tx, name)
		if err != nil {
			return err
		}
		if exists {
			return models.ErrLabelExists
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO labels (name, color, created_at) VALUES (?, ?, ?)`,
			name, color, formatTime(created),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.Label{Name: name, Color: color, CreatedAt: created}, nil
}

// GetAll retrieves all labels in creation order
func (r *LabelRepo) GetAll(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, color, created_at FROM labels ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// GetByName retrieves one label. Returns models.ErrLabelNotFound if missing.
func (r *LabelRepo) GetByName(ctx context.Context, name string) (*models.Label, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, color, created_at FROM labels WHERE name = ?`, name)
	label, err := scanLabel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLabelNotFound
	}
	return label, err
}

// Delete removes a label definition. Tasks keep the name.
func (r *LabelRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE name = ?`, name)
	if err != nil {
		return err
	}
	return requireAffected(result, models.ErrLabelNotFound)
}

// Missing returns the names from the given list that have no label definition
func (r *LabelRepo) Missing(ctx context.Context, names []string) ([]string, error) {
	names = normalizeLabels(names)
	if len(names) == 0 {
		return nil, nil
	}

	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM labels WHERE name IN (`+placeholders(len(names))+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]bool, len(names))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, n := range names {
		if !found[n] {
			missing = append(missing, n)
		}
	}
	return missing, nil
}

// SeedDefaults inserts the given labels only when no label is persisted.
// Returns the number of labels inserted.
func (r *LabelRepo) SeedDefaults(ctx context.Context, labels []models.Label) (int, error) {
	inserted := 0
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM labels`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := formatTime(r.now())
		for _, l := range labels {
			result, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO labels (name, color, created_at) VALUES (?, ?, ?)`,
				l.Name, l.Color, now,
			)
			if err != nil {
				return err
			}
			n, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLabel(row rowScanner) (*models.Label, error) {
	var (
		label   models.Label
		created string
	)
	if err := row.Scan(&label.Name, &label.Color, &created); err != nil {
		return nil, err
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	label.CreatedAt = t
	return &label, nil
}

func labelExists(ctx context.Context, q queryer, name string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM labels WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
