// Package render draws permit graphs as node-link diagrams.
//
// The graph is converted to Graphviz DOT with the two partitions visually
// separated - permits as filled boxes on the left rank, lots as ellipses on
// the right - then rendered to SVG or PNG through the embedded Graphviz
// engine. Rendering is purely presentational; it never modifies the graph.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/parkops/lotmap/pkg/permit"
)

// ToDOT converts a permit graph to Graphviz DOT format.
//
// Permits and lots are emitted in insertion order so the output is
// deterministic for a given graph. Identifiers are quoted with %q, which
// escapes embedded quotes safely.
func ToDOT(g *permit.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph permits {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14];\n")
	buf.WriteString("\n")

	buf.WriteString("  { rank=source;\n")
	for _, id := range g.Permits() {
		fmt.Fprintf(&buf, "    %q [shape=box, style=\"rounded,filled\", fillcolor=lightblue];\n", id)
	}
	buf.WriteString("  }\n")

	buf.WriteString("  { rank=sink;\n")
	for _, id := range g.Lots() {
		fmt.Fprintf(&buf, "    %q [shape=ellipse, style=filled, fillcolor=palegreen];\n", id)
	}
	buf.WriteString("  }\n\n")

	for _, p := range g.Pairs() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", p.Permit, p.Lot)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG bytes using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG bytes using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
