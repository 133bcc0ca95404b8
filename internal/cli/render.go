package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pipeline"
)

// renderFlags holds the command-line flags shared by render, pick and watch.
type renderFlags struct {
	formats   string  // comma-separated output formats
	outputDir string  // directory receiving <chart>.<format>
	scale     float64 // PNG resolution multiplier
	width     int     // figure width override
	height    int     // figure height override
	embedFont bool    // embed the label font in SVG output
	refresh   bool    // ignore cached results
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (default: settings output_dir or .)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG resolution multiplier (default 2)")
	cmd.Flags().IntVar(&f.width, "width", 0, "figure width in points (default: per chart)")
	cmd.Flags().IntVar(&f.height, "height", 0, "figure height in points (default: per chart)")
	cmd.Flags().BoolVar(&f.embedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached result exists")
}

// resolve merges the flags over the settings and returns the run options
// and output directory.
func (c *CLI) resolve(f renderFlags) (pipeline.Options, string, error) {
	opts := c.pipelineOptions()
	if f.formats != "" {
		formats, err := pipeline.ParseFormats(f.formats)
		if err != nil {
			return opts, "", err
		}
		opts.Formats = formats
	}
	if f.scale != 0 {
		opts.Scale = f.scale
	}
	opts.Width, opts.Height = f.width, f.height
	opts.EmbedFont = opts.EmbedFont || f.embedFont
	opts.Refresh = f.refresh
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, "", err
	}

	dir := f.outputDir
	if dir == "" {
		dir = c.Settings.OutputDir
	}
	if err := errors.ValidateOutputDir(dir); err != nil {
		return opts, "", err
	}
	return opts, dir, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [chart...]",
		Short: "Render charts to SVG, PNG, PDF or JSON",
		Long: `Render one or more charts from the catalog. With no arguments every chart
is rendered.

Each chart is written to <output-dir>/<chart>.<format>. Computed layouts and
rendered files are cached, so re-rendering an unchanged chart is instant.
Use 'footprint list' to see the available chart names.`,
		ValidArgsFunction: c.completeCharts,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, dir, err := c.resolve(flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, opts, dir)
		},
	}
	flags.register(cmd)

	return cmd
}

// runRender renders the named charts, or all of them, into dir.
func (c *CLI) runRender(ctx context.Context, names []string, opts pipeline.Options, dir string) error {
	catalog, err := c.catalog()
	if err != nil {
		return err
	}
	specs, err := pipeline.Select(catalog, names)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	results := make([]*pipeline.Result, 0, len(specs))
	for _, spec := range specs {
		spinner.Update(fmt.Sprintf("Rendering %s...", spec.Name))
		result, err := runner.Execute(ctx, spec, opts)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Render %s failed", spec.Name))
			return err
		}
		results = append(results, result)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, result := range results {
		paths, err := writeArtifacts(dir, result, opts.Formats)
		if err != nil {
			return err
		}
		printSuccess("%s", StyleHighlight.Render(result.Chart))
		for _, p := range paths {
			printFile(p)
		}
		printStats(result.Stats.Panels, result.Stats.Labels, result.CacheInfo.RenderHit)
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(results), "chart")))
	if !c.noCache {
		loggerFromContext(ctx).Debug("cache", "stats", c.cacheStats.Snapshot())
	}

	if len(names) == 0 && len(specs) > 1 {
		printNewline()
		printNextStep("Inspect label placement", appName+" plan "+specs[0].Name)
	}
	return nil
}

// renderOne renders a single spec; used by pick and watch.
func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, spec chart.Spec, opts pipeline.Options, dir string) (*pipeline.Result, []string, error) {
	result, err := runner.Execute(ctx, spec, opts)
	if err != nil {
		return nil, nil, err
	}
	paths, err := writeArtifacts(dir, result, opts.Formats)
	return result, paths, err
}

// writeArtifacts writes each format of result to dir/<chart>.<format> and
// returns the paths in format order.
func writeArtifacts(dir string, result *pipeline.Result, formats []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "%s: no %s output", result.Chart, format)
		}
		path := outputPath(dir, result.Chart, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns dir/<chart>.<format>.
func outputPath(dir, chartName, format string) string {
	return filepath.Join(dir, chartName+"."+format)
}

// completeCharts offers catalog chart names for shell completion.
func (c *CLI) completeCharts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}
