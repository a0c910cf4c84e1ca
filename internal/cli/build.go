package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/parkops/lotmap/pkg/export"
	"github.com/parkops/lotmap/pkg/permit"
)

// newBuildCmd creates the build command: read rows from the configured
// source, normalize, build the graph, and write the graph document.
func newBuildCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the permit graph from the configured data source",
		Long: `Build reads permit rows from the configured data source (CSV file,
TOML dataset, or MongoDB collection), normalizes them, builds the bipartite
permit→lot graph, and writes the graph document as JSON.

The document is the input to the query, check, render, prompt and serve
commands, so a typical session starts with:

  lotmap build --file permits.csv -o graph.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			src, err := newSource(cfg, file)
			if err != nil {
				return err
			}

			logger.Infof("Reading rows from %s", src.Name())
			prog := newProgress(logger)
			rows, err := src.Rows(ctx)
			if err != nil {
				return err
			}

			g, err := permit.BuildRows(rows)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built graph with %d permits, %d lots, %d grants",
				len(g.Permits()), len(g.Lots()), g.EdgeCount()))

			if rep := g.Validate(); !rep.Clean() {
				logger.Warnf("Isolated permits: %v", rep.IsolatedPermits)
				logger.Warnf("Isolated lots: %v", rep.IsolatedLots)
			}

			return writeGraph(g, output, logger)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "data file (overrides the configured source path)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// writeGraph serializes g as JSON to path, or stdout when path is empty.
func writeGraph(g *permit.Graph, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.Write(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method so os.Stdout can
// stand in for a file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
