package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/pie"
	"github.com/matzehuels/footprint/pkg/pipeline"
	"github.com/matzehuels/footprint/pkg/render/barchart"
	"github.com/matzehuels/footprint/pkg/render/piechart"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable returns a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// planCommand creates the plan command, which prints computed label plans.
func (c *CLI) planCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <chart>",
		Short: "Print the label plan of a chart",
		Long: `Print where every label of a chart goes.

For pie charts this lists, per subject, each wedge's percentage, whether the
label sits inside the wedge or outside the pie, its anchor in pie coordinates
(the pie radius is 1) and the leader line of external labels. Use it to pick
offsets for a label override. For bar charts it lists each bar's value.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeCharts,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the computed figure as JSON")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, name string, asJSON bool) error {
	catalog, err := c.catalog()
	if err != nil {
		return err
	}
	spec, err := catalog.Get(name)
	if err != nil {
		return err
	}

	fig, err := pipeline.GenerateLayout(ctx, spec)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := pipeline.MarshalFigure(fig)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	printKeyValue("Chart", spec.Name)
	printKeyValue("Title", spec.Title)
	printKeyValue("Kind", string(spec.Kind))
	printNewline()

	switch {
	case fig.Pie != nil:
		printPiePlan(*fig.Pie)
	case fig.Bar != nil:
		printBarPlan(*fig.Bar)
	}
	return nil
}

func printPiePlan(fig piechart.Figure) {
	for _, p := range fig.Panels {
		fmt.Println(StyleTitle.Render(p.Subject))
		if p.Unavailable {
			printWarning("%s", fig.UnavailableText)
			printNewline()
			continue
		}
		if len(p.Plan.Labels) == 0 {
			printInfo("No labels")
			printNewline()
			continue
		}

		t := newTable("Wedge", "Share", "Placement", "Anchor", "Leader")
		for _, l := range p.Plan.Labels {
			t.Row(l.Wedge, l.Text, l.Placement.String(), formatPoint(l.Anchor), formatLeader(l.Leader))
		}
		fmt.Println(t.Render())
		printDetail("%d internal, %d external", len(p.Plan.Internal()), len(p.Plan.External()))
		printNewline()
	}
}

func printBarPlan(fig barchart.Figure) {
	for _, p := range fig.Panels {
		if p.Subject != "" {
			fmt.Println(StyleTitle.Render(p.Subject))
		}
		t := newTable("Category", "Value", "Colour")
		for _, b := range p.Bars {
			t.Row(b.Category, b.Text, b.Color)
		}
		fmt.Println(t.Render())
		printDetail("y axis 0 to %s", StyleNumber.Render(strconv.FormatFloat(p.YMax, 'g', 4, 64)))
		printNewline()
	}
}

func formatPoint(p pie.Point) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

func formatLeader(l *pie.Leader) string {
	if l == nil {
		return "-"
	}
	return formatPoint(l.Start) + " " + iconArrow + " " + formatPoint(l.End)
}
