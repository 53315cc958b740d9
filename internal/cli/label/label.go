package label

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// labelResult is a single label returned by create
type labelResult struct {
	*models.Label
	verb string
}

func (r labelResult) Human() string {
	return fmt.Sprintf("✓ Label %s %s (%s)", styles.RenderLabelChip(r.Name, r.Color), r.verb, r.Color)
}

// labelList is the result of label list
type labelList struct {
	Labels []*models.Label `json:"labels"`
}

func (l labelList) Human() string {
	if len(l.Labels) == 0 {
		return "No labels found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d labels:\n", len(l.Labels))
	for _, lbl := range l.Labels {
		fmt.Fprintf(&b, "\n  %s %s", styles.RenderLabelChip(lbl.Name, lbl.Color), lbl.Color)
	}
	return b.String()
}

// deleteResult is the result of label delete
type deleteResult struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) Human() string {
	return fmt.Sprintf("✓ Label '%s' deleted (tasks keep the name)", r.Name)
}
