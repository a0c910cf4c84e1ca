package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/parkops/lotmap/pkg/cache"
	"github.com/parkops/lotmap/pkg/export"
	"github.com/parkops/lotmap/pkg/permit"
	"github.com/parkops/lotmap/pkg/render"
)

// artifactTTL bounds how long rendered artifacts stay cached. Graph hashes
// make stale hits impossible; the TTL only caps disk usage.
const artifactTTL = 30 * 24 * time.Hour

// newRenderCmd creates the render command: draw the graph as an image.
func newRenderCmd() *cobra.Command {
	var (
		graphPath string
		format    string
		output    string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the permit graph as svg, png or dot",
		Long: `Render draws the permit graph as a node-link diagram: permits on the
left, lots on the right, an arrow per grant.

Finished svg and png artifacts are cached keyed by the graph content, so
re-rendering an unchanged graph is instant. Use --no-cache to bypass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "svg" && format != "png" && format != "dot" {
				return fmt.Errorf("unknown format %q (want svg, png or dot)", format)
			}
			if output == "" {
				output = "graph." + format
			}
			return runRender(cmd.Context(), graphPath, format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "graph.json", "graph document produced by 'lotmap build'")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png or dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default graph.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runRender(ctx context.Context, graphPath, format, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	g, err := readGraph(graphPath)
	if err != nil {
		return err
	}

	dot := render.ToDOT(g)
	if format == "dot" {
		return writeArtifact(output, []byte(dot), logger)
	}

	cfg, err := configFromContext(ctx)
	if err != nil {
		return err
	}
	store := newCache(ctx, cfg, noCache)
	defer store.Close()

	// Key by the canonical document so semantically equal graphs share
	// an artifact regardless of which file they were loaded from.
	doc, err := export.Marshal(g)
	if err != nil {
		return err
	}
	key := cache.ArtifactKey(cache.Hash(doc), format)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debugf("Artifact cache hit for %s", format)
		return writeArtifact(output, data, logger)
	}

	prog := newProgress(logger)
	data, err := renderArtifact(ctx, g, dot, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	prog.done(fmt.Sprintf("Rendered %s (%d bytes)", format, len(data)))

	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Debugf("Artifact cache write failed: %v", err)
	}
	return writeArtifact(output, data, logger)
}

func renderArtifact(ctx context.Context, g *permit.Graph, dot, format string) ([]byte, error) {
	if format == "png" {
		return render.RenderPNG(ctx, dot)
	}
	return render.RenderSVG(ctx, dot)
}

func writeArtifact(path string, data []byte, logger interface{ Infof(string, ...any) }) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Infof("Wrote %s", path)
	return nil
}
