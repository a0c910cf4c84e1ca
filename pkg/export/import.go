package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/parkops/lotmap/pkg/permit"
)

// Read decodes a JSON graph document from r into a built graph.
//
// Each node needs an "id" and a "kind" of "permit" or "lot"; each edge
// references a permit and a lot by ID. Edges may create nodes that are
// missing from the node list, but a node entry is required to round-trip
// an isolated permit or lot. Read returns the same identifier errors as
// the engine (empty IDs, permit/lot collisions) wrapped with the offending
// entry for context. Read does not close r.
func Read(r io.Reader) (*permit.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(doc)
}

// ReadFile reads the JSON document at path and returns the decoded graph.
func ReadFile(path string) (*permit.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ToGraph rebuilds a graph from its document form.
func ToGraph(doc Document) (*permit.Graph, error) {
	g := permit.New()
	for _, n := range doc.Nodes {
		var err error
		switch n.Kind {
		case permit.KindPermit.String():
			err = g.AddPermit(n.ID)
		case permit.KindLot.String():
			err = g.AddLot(n.ID)
		default:
			err = fmt.Errorf("unknown kind %q", n.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddGrant(e.Permit, e.Lot); err != nil {
			return nil, fmt.Errorf("edge %s→%s: %w", e.Permit, e.Lot, err)
		}
	}
	return g, nil
}
