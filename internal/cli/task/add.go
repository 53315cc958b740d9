package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to the Todo column",
		Long: `Add a new task. It lands at the bottom of the Todo column.

Examples:
  # Title as arguments, default label attached
  tablero task add Buy milk

  # Explicit labels and a description
  tablero task add --title="Fix bug" --label urgent --label important --description="Crash on save"

  # Description from stdin, ID captured for scripts
  TASK_ID=$(git log -1 --format=%B | tablero task add --title="Review" --description=- --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runAdd)),
	}

	cmd.Flags().String("title", "", "Task title (or pass it as arguments)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().StringSlice("label", nil, "Label to attach (repeatable, defaults to the configured default label)")
	cmd.Flags().Bool("no-label", false, "Create the task without any label")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	controller := args.CLI.App.Board

	in := controller.NewInput()
	in.Text = args.GetString("title", strings.Join(args.Args, " "))

	description, err := readDescription(args)
	if err != nil {
		return nil, err
	}
	in.Description = description

	switch {
	case args.GetBool("no-label"):
		in.Labels = nil
	case args.IsSet("label"):
		in.Labels, err = args.Parser.ParseLabels("label")
		if err != nil {
			return nil, err
		}
	}

	task, err := controller.Add(ctx, in)
	if err != nil {
		return nil, err
	}
	if task == nil {
		// Blank titles are ignored by the board; on the command line that is a mistake
		return nil, models.ErrEmptyTitle
	}

	return taskResult{Task: task, verb: "created"}, nil
}

// readDescription returns the --description flag, reading stdin for "-"
func readDescription(args *handler.Arguments) (string, error) {
	description := args.GetString("description", "")
	if description != "-" {
		return description, nil
	}

	data, err := io.ReadAll(args.GetCmd().InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
