package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pipeline"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 150 * time.Millisecond

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "watch <chart>",
		Short: "Re-render a chart whenever the chart definition file changes",
		Long: `Render a chart, then render it again every time the chart definition
file (--charts) is saved. Keep the output open in a viewer that reloads on
change while tuning label overrides.

A definition that fails to load or validate is reported and the previous
output is left in place. Stop with Ctrl+C.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeCharts,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.chartsPath == "" {
				return errors.New(errors.ErrCodeInvalidInput, "watch needs a chart definition file: pass --charts or set charts in %s", settingsFile)
			}
			opts, dir, err := c.resolve(flags)
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), args[0], opts, dir)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, name string, opts pipeline.Options, dir string) error {
	logger := loggerFromContext(ctx)

	path, err := filepath.Abs(c.chartsPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	// A broken definition file at startup is fatal; later ones are not.
	if err := c.rerender(ctx, runner, name, opts, dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	printInfo("Watching %s", path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			printNewline()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isDefinitionChange(event, path) {
				continue
			}
			logger.Debug("definition changed", "path", event.Name, "op", event.Op.String())
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			if err := c.rerender(ctx, runner, name, opts, dir); err != nil {
				printError("%s", errors.UserMessage(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

// rerender reloads the catalog and renders the chart once.
func (c *CLI) rerender(ctx context.Context, runner *pipeline.Runner, name string, opts pipeline.Options, dir string) error {
	catalog, err := c.catalog()
	if err != nil {
		return err
	}
	spec, err := catalog.Get(name)
	if err != nil {
		return err
	}

	result, paths, err := c.renderOne(ctx, runner, spec, opts, dir)
	if err != nil {
		return err
	}
	printSuccess("%s %s", StyleHighlight.Render(result.Chart), StyleDim.Render(time.Now().Format("15:04:05")))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Panels, result.Stats.Labels, result.CacheInfo.RenderHit)
	return nil
}

// isDefinitionChange reports whether event touched the file at path in a
// way that may have changed its content.
func isDefinitionChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
