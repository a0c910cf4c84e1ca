// Package cli implements the lotmap command-line interface.
//
// The commands compose the pure graph engine with the I/O collaborators it
// deliberately excludes: data sources feed `build`, and the exported graph
// document feeds `permit`, `lot`, `check`, `render`, `prompt` and `serve`.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/parkops/lotmap/pkg/buildinfo"
)

// appName is used for config and cache directory names.
const appName = "lotmap"

// Execute runs the lotmap CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lotmap",
		Short:        "lotmap answers which parking permits allow which lots",
		Long:         `lotmap ingests campus parking permit records, builds a bipartite permit→lot graph, and answers forward ("which lots does permit X allow?") and reverse ("which permits allow lot Y?") reachability queries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfigPath(ctx, configPath))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/lotmap/config.toml)")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newPermitCmd())
	root.AddCommand(newLotCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newPromptCmd())
	root.AddCommand(newServeCmd())

	return root
}
