package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a label",
		Long: `Delete a label. Tasks carrying it keep the name and render it
in the neutral color.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().String("name", "", "Label name (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	name := args.GetString("name", "")
	if len(args.Args) > 0 {
		name = args.Args[0]
	}
	if name == "" {
		return nil, cli.UsageError("label name is required")
	}

	if err := args.CLI.App.LabelService.DeleteLabel(ctx, name); err != nil {
		return nil, err
	}
	return deleteResult{Name: name, Deleted: true}, nil
}
