package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task to a column and position",
		Long: `Move a task to another status column, or reorder it within its column.
Without --index or --before the task goes to the bottom of the column.

Examples:
  tablero task move 3 --status=in_progress
  tablero task move 3 --status=todo --index=0
  tablero task move 3 --status=done --before=7
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("status", "", "Destination column: todo, in_progress, done (required)")
	cmd.Flags().Int("index", -1, "Zero-based position in the destination column")
	cmd.Flags().Int("before", 0, "Place the task directly above this task")
	addOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskArg(args.Args, "id")
	if err != nil {
		return nil, err
	}
	status, err := args.Parser.ParseStatus("status")
	if err != nil {
		return nil, err
	}
	index, err := args.Parser.ParseIndex("index")
	if err != nil {
		return nil, err
	}
	before := args.GetInt("before", 0)
	if before != 0 && args.IsSet("index") {
		return nil, cli.UsageError("--index and --before cannot be combined")
	}

	controller := args.CLI.App.Board
	if err := controller.Refresh(ctx); err != nil {
		return nil, err
	}

	completed := watchCompletion(ctx, args.CLI.App.Events())

	var change *models.StatusChange
	if before > 0 {
		change, err = controller.MoveBefore(ctx, taskID, status, before)
	} else {
		change, err = controller.Move(ctx, taskID, status, index)
	}
	if change != nil && errors.Is(err, board.ErrStaleSnapshot) {
		slog.Warn("task moved, board reload failed", "task_id", taskID, "error", err)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	return moveResult{
		Task:           change.Task,
		PreviousStatus: change.Previous,
		AllDone:        change.AllDone,
		BoardCompleted: completed(),
	}, nil
}

// watchCompletion subscribes to the board completed event. The returned
// func reports whether one was published since the call.
func watchCompletion(ctx context.Context, publisher events.EventPublisher) func() bool {
	if publisher == nil {
		return func() bool { return false }
	}

	subCtx, cancel := context.WithCancel(ctx)
	ch, err := publisher.Subscribe(subCtx, events.EventBoardCompleted)
	if err != nil {
		cancel()
		slog.Warn("failed to watch board completion", "error", err)
		return func() bool { return false }
	}

	return func() bool {
		defer cancel()
		select {
		case _, ok := <-ch:
			return ok
		default:
			return false
		}
	}
}
