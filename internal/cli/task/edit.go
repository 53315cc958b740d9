package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change a task's title or description",
		Long: `Change a task's title or description. Flags that are not given keep
their current value.

Examples:
  tablero task edit 3 --title="Buy oat milk"
  tablero task edit 3 --description=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runEdit)),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskArg(args.Args, "id")
	if err != nil {
		return nil, err
	}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if args.IsSet("title") {
		title := args.GetString("title", "")
		req.Title = &title
	}
	if args.IsSet("description") {
		description, err := readDescription(args)
		if err != nil {
			return nil, err
		}
		req.Description = &description
	}
	if req.Title == nil && req.Description == nil {
		return nil, cli.UsageError("nothing to change: pass --title or --description")
	}

	task, err := args.CLI.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return nil, err
	}
	return taskResult{Task: task, verb: "updated"}, nil
}
