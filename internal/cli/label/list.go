package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long:  "List all labels in creation order.",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	labels, err := args.CLI.App.LabelService.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []*models.Label{}
	}
	return labelList{Labels: labels}, nil
}
