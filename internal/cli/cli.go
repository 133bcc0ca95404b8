package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footprint/pkg/buildinfo"
	"github.com/matzehuels/footprint/pkg/cache"
	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/observability"
	"github.com/matzehuels/footprint/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "footprint"

	// settingsFile is the settings file name inside the config directory.
	settingsFile = "footprint.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Settings Settings

	cacheStats *observability.CacheCounter

	// Persistent flag values. Empty or false means "use the settings file".
	configPath string
	chartsPath string
	redisAddr  string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:     newLogger(w, level),
		Settings:   defaultSettings(),
		cacheStats: &observability.CacheCounter{},
	}
	gg.SetLogger(slog.New(c.Logger))
	observability.SetCacheHooks(c.cacheStats)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Footprint draws carbon footprint comparison charts",
		Long: `Footprint renders the carbon footprint comparison charts: pie charts with
automatically placed percentage labels, and bar charts of per-subject totals.

Charts come from a built-in catalog. A chart definition file (--charts) can
adjust any of them, for example to hand-tune a label position, or add new ones.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadSettings(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "settings file (default: $XDG_CONFIG_HOME/footprint/footprint.toml)")
	pf.StringVar(&c.chartsPath, "charts", "", "chart definition file (.toml, .yaml or .json) merged over the built-in charts")
	pf.StringVar(&c.redisAddr, "redis", "", "cache in Redis at host:port instead of the local cache directory")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable caching")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadSettings reads the settings file and lets explicit flags win over it.
func (c *CLI) loadSettings(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return nil
		}
		path = filepath.Join(dir, settingsFile)
	}

	s, err := readSettings(path, explicit)
	if err != nil {
		return err
	}
	c.Settings = s

	flags := cmd.Flags()
	if !flags.Changed("charts") && s.Charts != "" {
		c.chartsPath = s.Charts
	}
	if !flags.Changed("redis") && s.RedisAddr != "" {
		c.redisAddr = s.RedisAddr
	}
	c.Logger.Debug("settings", "path", path, "output_dir", s.OutputDir, "formats", s.Formats, "charts", c.chartsPath)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// newCache picks the cache backend: none, Redis or the local directory.
// An unreachable Redis falls back to the local directory.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.redisAddr)
		if err == nil {
			c.Logger.Debug("using redis cache", "addr", c.redisAddr)
			return rc, nil
		}
		c.Logger.Warn("redis unavailable, using local cache", "addr", c.redisAddr, "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// catalog loads the built-in charts with the definition file merged over them.
func (c *CLI) catalog() (*chart.Catalog, error) {
	return pipeline.LoadCatalog(c.chartsPath)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory (~/.cache/footprint/ on Linux).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

// configDir returns the config directory using XDG standard (~/.config/footprint/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions turns settings into pipeline options for one run.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Formats:   c.Settings.Formats,
		Scale:     c.Settings.Scale,
		EmbedFont: c.Settings.EmbedFont,
		Logger:    c.Logger,
	}
}
