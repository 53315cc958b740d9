package label

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	testutilcli "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestCreateLabelCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		shouldErr bool
		exitCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "create with positional name",
			args: []string{"home", "--color", "#10B981", "--json"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data, ok := result["data"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "home", data["name"])
				assert.Equal(t, "#10B981", data["color"])
			},
		},
		{
			name: "create with flag and default color",
			args: []string{"--name", "errands"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "created")
				assert.Contains(t, output, models.DefaultLabelColor)
			},
		},
		{
			name:      "duplicate name",
			args:      []string{"urgent"},
			shouldErr: true,
			exitCode:  cli.ExitConflict,
		},
		{
			name:      "missing name",
			args:      []string{"--color", "#FF0000"},
			shouldErr: true,
			exitCode:  cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), tt.args)

			if tt.shouldErr {
				require.Error(t, err)
				assert.Equal(t, tt.exitCode, cli.ExitCode(err))
				return
			}
			require.NoError(t, err, "output: %s", output)
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestListLabelsCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	t.Run("json in creation order", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok)
		labels, ok := data["labels"].([]interface{})
		require.True(t, ok)

		var names []string
		for _, l := range labels {
			names = append(names, l.(map[string]interface{})["name"].(string))
		}
		assert.Equal(t, []string{"important", "urgent", "normal"}, names)
	})

	t.Run("human output", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 3 labels:")
		assert.Contains(t, output, "#EF4444")
	})
}

func TestDeleteLabelCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	taskID := testutilcli.CreateTestTask(t, db, "Keeps the name", "urgent")

	output, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"urgent"})
	require.NoError(t, err)
	assert.Contains(t, output, "Label 'urgent' deleted")

	_, err = app.LabelService.GetLabel(context.Background(), "urgent")
	assert.ErrorIs(t, err, models.ErrLabelNotFound)

	// No cascade: the task still carries the name
	assert.Equal(t, []string{"urgent"}, testutil.GetTestTask(t, db, taskID).Labels)

	t.Run("unknown label", func(t *testing.T) {
		_, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"urgent"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
