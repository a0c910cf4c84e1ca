package cli

import (
	"fmt"

	"github.com/parkops/lotmap/pkg/export"
	"github.com/parkops/lotmap/pkg/permit"
)

// readGraph loads the graph document shared by the query, check, render,
// prompt and serve commands.
func readGraph(path string) (*permit.Graph, error) {
	g, err := export.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s (run 'lotmap build' first): %w", path, err)
	}
	return g, nil
}
