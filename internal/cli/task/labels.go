package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// LabelsCmd returns the task labels subcommand
func LabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels [id]",
		Short: "Replace a task's labels",
		Long: `Replace the labels of a task. Every label must exist.
Passing no --label clears them.

Examples:
  tablero task labels 3 --label urgent --label important
  tablero task labels 3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runLabels)),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().StringSlice("label", nil, "Label to set (repeatable)")
	addOutputFlags(cmd)

	return cmd
}

func runLabels(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskArg(args.Args, "id")
	if err != nil {
		return nil, err
	}
	labels, err := args.Parser.ParseLabels("label")
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.SetTaskLabels(ctx, taskID, labels)
	if err != nil {
		return nil, err
	}
	return taskResult{Task: task, verb: "relabeled"}, nil
}
