package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the footprint CLI with args and returns an error if any
// command fails. Logging goes to stderr at info level, or debug level with
// --verbose (-v).
func Execute(ctx context.Context, args []string) error {
	return newRoot().run(ctx, args)
}

type rootCmd struct {
	cli     *CLI
	cmd     *cobra.Command
	verbose bool
}

func newRoot() *rootCmd {
	r := &rootCmd{cli: New(os.Stderr, LogInfo)}
	r.cmd = r.cli.RootCommand()
	r.cmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "enable verbose logging")

	loadSettings := r.cmd.PersistentPreRunE
	r.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if r.verbose {
			level = LogDebug
		}
		r.cli.SetLogLevel(level)
		return loadSettings(cmd, args)
	}
	return r
}

func (r *rootCmd) run(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}
