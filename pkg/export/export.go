// Package export serializes permit graphs to a canonical JSON document.
//
// The document is the hand-off artifact between tool stages: `lotmap build`
// writes it, the query, render and serve layers read it back. It is not a
// core persistence format - the engine always rebuilds from source rows;
// the document just spares the wrappers a re-read of the data source.
//
// Node and edge order mirrors graph insertion order for round-trip
// fidelity: export → import produces a graph with identical query results,
// including result ordering. The struct tags include bson so the same
// document shape can be stored in MongoDB unchanged.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/parkops/lotmap/pkg/permit"
)

// Document is the canonical serialization of a permit graph.
type Document struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is a single permit or lot in the document.
type Node struct {
	ID   string `json:"id" bson:"id"`
	Kind string `json:"kind" bson:"kind"` // "permit" or "lot"
}

// Edge is a directed permit→lot grant in the document.
type Edge struct {
	Permit string `json:"permit" bson:"permit"`
	Lot    string `json:"lot" bson:"lot"`
}

// FromGraph converts a built graph to its document form.
// Permits come first, then lots, each partition in insertion order.
func FromGraph(g *permit.Graph) Document {
	permits := g.Permits()
	lots := g.Lots()
	doc := Document{
		Nodes: make([]Node, 0, len(permits)+len(lots)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, id := range permits {
		doc.Nodes = append(doc.Nodes, Node{ID: id, Kind: permit.KindPermit.String()})
	}
	for _, id := range lots {
		doc.Nodes = append(doc.Nodes, Node{ID: id, Kind: permit.KindLot.String()})
	}
	for _, p := range g.Pairs() {
		doc.Edges = append(doc.Edges, Edge{Permit: p.Permit, Lot: p.Lot})
	}
	return doc
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *permit.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as indented JSON to w.
func Write(g *permit.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph as a JSON file at path.
// The file is created with 0644 permissions, overwriting if it exists.
func WriteFile(g *permit.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}
