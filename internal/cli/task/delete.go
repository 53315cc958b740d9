package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task. Deleting a task that does not exist succeeds.
The configured board.delete_delay is waited first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskArg(args.Args, "id")
	if err != nil {
		return nil, err
	}

	err = args.CLI.App.Board.Delete(ctx, taskID)
	if errors.Is(err, board.ErrStaleSnapshot) {
		slog.Warn("task deleted, board reload failed", "task_id", taskID, "error", err)
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return deleteResult{ID: taskID, Deleted: true}, nil
}
