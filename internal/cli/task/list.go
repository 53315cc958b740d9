package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in board order: Todo, In Progress, then Done.

Examples:
  tablero task list
  tablero task list --status=in_progress
  tablero task list --label=urgent --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("status", board.FilterAll, "Only tasks with this status (todo, in_progress, done, all)")
	cmd.Flags().String("label", board.FilterAll, "Only tasks carrying this label")
	addOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	tasks := args.CLI.App.TaskService

	rawStatus := strings.TrimSpace(args.GetString("status", board.FilterAll))
	label := strings.TrimSpace(args.GetString("label", board.FilterAll))
	if strings.EqualFold(label, board.FilterAll) {
		label = ""
	}

	var status models.Status
	if rawStatus != "" && !strings.EqualFold(rawStatus, board.FilterAll) {
		var err error
		status, err = models.ParseStatus(rawStatus)
		if err != nil {
			return nil, err
		}
	}

	var (
		result []*models.Task
		err    error
	)
	switch {
	case status != "" && label != "":
		result, err = tasks.GetByStatusAndLabel(ctx, status, label)
	case status != "":
		result, err = tasks.GetByStatus(ctx, status)
	case label != "":
		result, err = tasks.GetByLabel(ctx, label)
	default:
		result, err = tasks.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Task{}
	}

	return taskList{Tasks: result}, nil
}
