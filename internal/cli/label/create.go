package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new label",
		Long: `Create a new label. Names are unique.

Examples:
  tablero label create home --color="#10B981"
  tablero label create --name=errands
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("name", "", "Label name (can also be provided as positional argument)")
	cmd.Flags().String("color", "", "Display color, e.g. #FF0000 (defaults to a neutral gray)")
	addOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	name := args.GetString("name", "")
	if len(args.Args) > 0 {
		name = args.Args[0]
	}
	color, err := args.Parser.ParseColor("color")
	if err != nil {
		return nil, err
	}

	label, err := args.CLI.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{
		Name:  name,
		Color: color,
	})
	if err != nil {
		return nil, err
	}
	return labelResult{Label: label, verb: "created"}, nil
}
