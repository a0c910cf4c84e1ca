package render

import (
	"strings"
	"testing"

	"github.com/parkops/lotmap/pkg/permit"
)

func testGraph(t *testing.T) *permit.Graph {
	t.Helper()
	g, err := permit.Build([]permit.Pair{
		{Permit: "Gold", Lot: "Lot A"},
		{Permit: "Gold", Lot: "Lot B"},
		{Permit: "Silver", Lot: "Lot B"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t))

	for _, want := range []string{
		"digraph permits {",
		"rankdir=LR;",
		`"Gold" [shape=box`,
		`"Lot A" [shape=ellipse`,
		`"Gold" -> "Lot A";`,
		`"Silver" -> "Lot B";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := testGraph(t)
	if ToDOT(g) != ToDOT(g) {
		t.Error("ToDOT must be deterministic for the same graph")
	}
}

func TestToDOTQuotesIdentifiers(t *testing.T) {
	g, err := permit.Build([]permit.Pair{{Permit: `He said "go"`, Lot: "Lot A"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dot := ToDOT(g)
	if !strings.Contains(dot, `"He said \"go\""`) {
		t.Errorf("quotes not escaped:\n%s", dot)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	dot := ToDOT(permit.New())
	if !strings.Contains(dot, "digraph permits {") || !strings.Contains(dot, "}") {
		t.Errorf("empty graph should still be valid DOT:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("empty graph must have no edges")
	}
}
