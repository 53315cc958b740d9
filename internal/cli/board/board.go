package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	kanban "github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the three columns",
		Long: `Draw the Todo, In Progress and Done columns side by side.

Examples:
  tablero board show
  tablero board show --label=urgent
  tablero board show --status=done --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().String("status", kanban.FilterAll, "Only show tasks with this status")
	cmd.Flags().String("label", kanban.FilterAll, "Only show tasks carrying this label")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// boardView is the board render model with a terminal rendering
type boardView struct {
	kanban.Board
}

func (v boardView) IDs() []int {
	ids := make([]int, 0, v.Len())
	for _, col := range v.Columns {
		for _, card := range col.Tasks {
			ids = append(ids, card.ID)
		}
	}
	return ids
}

func (v boardView) Human() string {
	columns := make([]string, 0, len(v.Columns))
	for _, col := range v.Columns {
		cards := make([]string, 0, len(col.Tasks))
		for _, card := range col.Tasks {
			cards = append(cards, renderCard(card))
		}
		columns = append(columns, styles.RenderColumn(col.Status, cards))
	}

	var b strings.Builder
	b.WriteString(styles.RenderBoard(columns...))
	b.WriteString("\n")

	footer := fmt.Sprintf("%d/%d done", v.Done, v.Total)
	if v.Filter.IsActive() {
		footer += fmt.Sprintf("  (showing %d, filter status=%s label=%s)",
			v.Len(), orAll(v.Filter.Status), orAll(v.Filter.Label))
	}
	b.WriteString(styles.SubtitleStyle.Render(footer))
	if v.AllDone {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render("🎉 Every task is done!"))
	}
	return b.String()
}

func renderCard(card kanban.Card) string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("#%d ", card.ID)))
	b.WriteString(styles.TitleStyle.Render(card.Title))
	if len(card.Labels) > 0 {
		chips := make([]string, 0, len(card.Labels))
		for _, l := range card.Labels {
			chips = append(chips, styles.RenderLabelChip(l.Name, l.Color))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(chips, " "))
	}
	return b.String()
}

func orAll(s string) string {
	if strings.TrimSpace(s) == "" {
		return kanban.FilterAll
	}
	return s
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	controller := args.CLI.App.Board

	filter := kanban.Filter{
		Status: args.GetString("status", ""),
		Label:  args.GetString("label", ""),
	}
	if err := controller.SetFilter(ctx, filter); err != nil {
		return nil, err
	}

	if !args.GetBool("json") && !args.GetBool("quiet") {
		styles.Init(args.CLI.Config.ColorScheme)
	}
	return boardView{Board: controller.Board()}, nil
}
