package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its description rendered as markdown, labels, and timestamps.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

// taskDetail is a task with its label colors resolved
type taskDetail struct {
	*models.Task
	LabelColors map[string]string `json:"label_colors"`
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.Parser.ParseTaskArg(args.Args, "id")
	if err != nil {
		return nil, err
	}

	task, err := args.CLI.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	labels, err := args.CLI.App.LabelService.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]string, len(labels))
	for _, l := range labels {
		known[l.Name] = l.Color
	}

	detail := taskDetail{Task: task, LabelColors: make(map[string]string, len(task.Labels))}
	for _, name := range task.Labels {
		color, ok := known[name]
		if !ok {
			color = models.DefaultLabelColor
		}
		detail.LabelColors[name] = color
	}

	if !args.GetBool("json") && !args.GetBool("quiet") {
		styles.Init(args.CLI.Config.ColorScheme)
	}
	return detail, nil
}

func (d taskDetail) Human() string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", d.ID, d.Title)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.ColoredText(styles.StatusTitle(d.Status), styles.StatusColor(d.Status)),
	))
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Position:"),
		styles.ValueStyle.Render(fmt.Sprintf("%d", d.Position+1)),
	))

	// Timestamps
	if !d.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(d.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
		))
	}
	if !d.UpdatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Updated:"),
			styles.SubtitleStyle.Render(d.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
		))
	}

	// Labels
	if len(d.Labels) > 0 {
		content.WriteString(styles.SectionStyle.Render("Labels"))
		content.WriteString("\n")
		chips := make([]string, 0, len(d.Labels))
		for _, name := range d.Labels {
			chips = append(chips, styles.RenderLabelChip(name, d.LabelColors[name]))
		}
		content.WriteString("  " + strings.Join(chips, " ") + "\n")
	}

	// Description
	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(d.Description, styles.CardWidth-8))

	return styles.RenderCard(content.String())
}
