package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/chart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// ChartListModel is the bubbletea model for interactive chart selection.
type ChartListModel struct {
	Charts   []chart.Spec
	Cursor   int
	Selected *chart.Spec
	Height   int
	Offset   int
}

// NewChartListModel creates a new chart list model.
func NewChartListModel(charts []chart.Spec) ChartListModel {
	return ChartListModel{
		Charts: charts,
		Height: 15,
	}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Charts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Charts) == 0 {
				return m, nil
			}
			spec := m.Charts[m.Cursor]
			m.Selected = &spec
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Charts))
	for i := m.Offset; i < end; i++ {
		s := m.Charts[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-26s %-4s %s", cursor, s.Name, s.Kind, listDimStyle.Render(s.Title))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Charts))))

	return b.String()
}

// =============================================================================
// pick command
// =============================================================================

// pickCommand creates the pick command.
func (c *CLI) pickCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a chart interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, dir, err := c.resolve(flags)
			if err != nil {
				return err
			}

			spec, err := c.pickChart(cmd.Context())
			if err != nil || spec == nil {
				return err
			}
			return c.runRender(cmd.Context(), []string{spec.Name}, opts, dir)
		},
	}
	flags.register(cmd)

	return cmd
}

// pickChart runs the selection UI. It returns nil when the user quits
// without choosing.
func (c *CLI) pickChart(ctx context.Context) (*chart.Spec, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(NewChartListModel(catalog.All()), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("chart picker: %w", err)
	}
	m, ok := final.(ChartListModel)
	if !ok || m.Selected == nil {
		printInfo("No chart selected")
		return nil, nil
	}
	return m.Selected, nil
}
