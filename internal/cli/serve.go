package cli

import (
	"github.com/spf13/cobra"

	"github.com/parkops/lotmap/internal/server"
)

// newServeCmd creates the serve command: expose the graph over HTTP.
func newServeCmd() *cobra.Command {
	var (
		graphPath string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve permit queries over HTTP",
		Long: `Serve loads the graph document once and answers read-only queries over
HTTP until interrupted:

  GET /api/permits/{id}/lots
  GET /api/lots/{id}/permits
  GET /api/graph
  GET /api/validate
  GET /healthz

The graph is immutable while serving; rebuild and restart to pick up new
data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if addr == "" {
				cfg, err := configFromContext(ctx)
				if err != nil {
					return err
				}
				addr = cfg.Server.Addr
			}

			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			return server.New(g, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "graph.json", "graph document produced by 'lotmap build'")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
