package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db)
	if err := appInstance.Start(context.Background(), nil); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}

	return db, appInstance
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title string, labels ...string) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, labels...)
}
