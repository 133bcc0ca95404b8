package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/chart"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the charts in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalog()
			if err != nil {
				return err
			}
			if namesOnly {
				fmt.Println(strings.Join(catalog.Names(), "\n"))
				return nil
			}

			t := newTable("Chart", "Kind", "Subjects", "Unit", "Title")
			for _, s := range catalog.All() {
				t.Row(chartRow(s)...)
			}
			fmt.Println(t.Render())
			printDetail("%s", plural(catalog.Len(), "chart"))
			if c.chartsPath != "" {
				printDetail("Definitions: %s", c.chartsPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print chart names only, one per line")

	return cmd
}

func chartRow(s chart.Spec) []string {
	return []string{
		s.Name,
		string(s.Kind),
		strconv.Itoa(len(s.Dataset.Subjects)),
		s.Dataset.Unit,
		s.Title,
	}
}
