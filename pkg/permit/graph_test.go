package permit

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	pairs := []Pair{
		{"Gold", "Lot A"},
		{"Gold", "Lot B"},
		{"Silver", "Lot B"},
	}

	g, err := Build(pairs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
	if got := g.Permits(); !reflect.DeepEqual(got, []string{"Gold", "Silver"}) {
		t.Errorf("Permits = %v", got)
	}
	if got := g.Lots(); !reflect.DeepEqual(got, []string{"Lot A", "Lot B"}) {
		t.Errorf("Lots = %v", got)
	}

	if k, ok := g.KindOf("Gold"); !ok || k != KindPermit {
		t.Errorf("KindOf(Gold) = %v, %v", k, ok)
	}
	if k, ok := g.KindOf("Lot B"); !ok || k != KindLot {
		t.Errorf("KindOf(Lot B) = %v, %v", k, ok)
	}
	if _, ok := g.KindOf("missing"); ok {
		t.Error("KindOf(missing) should report absence")
	}
}

func TestBuildIdempotent(t *testing.T) {
	pairs := []Pair{
		{"Gold", "Lot A"},
		{"Silver", "Lot B"},
		{"Gold", "Lot A"}, // duplicate grant collapses
	}

	g1, err := Build(pairs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g2, err := Build(pairs)
	if err != nil {
		t.Fatalf("Build (second): %v", err)
	}

	if g1.EdgeCount() != 2 || g2.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d/%d, want 2/2", g1.EdgeCount(), g2.EdgeCount())
	}
	if !reflect.DeepEqual(g1.Pairs(), g2.Pairs()) {
		t.Errorf("edge sets differ: %v vs %v", g1.Pairs(), g2.Pairs())
	}
	if !reflect.DeepEqual(g1.Permits(), g2.Permits()) || !reflect.DeepEqual(g1.Lots(), g2.Lots()) {
		t.Error("node sets differ between identical builds")
	}

	lots1, _ := g1.SearchByPermit("Gold")
	lots2, _ := g2.SearchByPermit("Gold")
	if !reflect.DeepEqual(lots1, lots2) {
		t.Errorf("query results differ: %v vs %v", lots1, lots2)
	}
}

func TestBuildCollision(t *testing.T) {
	// "X" is a lot in the first pair and a permit in the second.
	_, err := Build([]Pair{{"A", "X"}, {"X", "B"}})
	var ice *IdentifierCollisionError
	if !errors.As(err, &ice) {
		t.Fatalf("error = %v, want *IdentifierCollisionError", err)
	}
	if ice.ID != "X" {
		t.Errorf("ID = %q, want %q", ice.ID, "X")
	}
	if ice.Existing != KindLot || ice.Proposed != KindPermit {
		t.Errorf("kinds = %v/%v, want lot/permit", ice.Existing, ice.Proposed)
	}
}

func TestBuildCollisionReversed(t *testing.T) {
	// Same ambiguity, opposite insertion order.
	_, err := Build([]Pair{{"X", "B"}, {"A", "X"}})
	var ice *IdentifierCollisionError
	if !errors.As(err, &ice) {
		t.Fatalf("error = %v, want *IdentifierCollisionError", err)
	}
	if ice.Existing != KindPermit || ice.Proposed != KindLot {
		t.Errorf("kinds = %v/%v, want permit/lot", ice.Existing, ice.Proposed)
	}
}

func TestBuildEmptyIdentifier(t *testing.T) {
	if _, err := Build([]Pair{{"", "L1"}}); !errors.Is(err, ErrEmptyIdentifier) {
		t.Errorf("error = %v, want ErrEmptyIdentifier", err)
	}
	if _, err := Build([]Pair{{"A", ""}}); !errors.Is(err, ErrEmptyIdentifier) {
		t.Errorf("error = %v, want ErrEmptyIdentifier", err)
	}
}

func TestBuildRows(t *testing.T) {
	g, err := BuildRows([]Row{
		{Permit: "Gold", Lots: "Lot A, Lot B"},
		{Permit: "Visitor", Lots: ""}, // permit node, zero grants
	})
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}

	if got := g.Permits(); !reflect.DeepEqual(got, []string{"Gold", "Visitor"}) {
		t.Errorf("Permits = %v", got)
	}
	lots, err := g.SearchByPermit("Visitor")
	if err != nil {
		t.Fatalf("SearchByPermit(Visitor): %v", err)
	}
	if len(lots) != 0 {
		t.Errorf("Visitor lots = %v, want none", lots)
	}

	rep := g.Validate()
	if !reflect.DeepEqual(rep.IsolatedPermits, []string{"Visitor"}) {
		t.Errorf("IsolatedPermits = %v, want [Visitor]", rep.IsolatedPermits)
	}
}

func TestBuildRowsMalformed(t *testing.T) {
	_, err := BuildRows([]Row{{Permit: "A", Lots: "L1"}, {Permit: "  ", Lots: "L2"}})
	var mre *MalformedRowError
	if !errors.As(err, &mre) {
		t.Fatalf("error = %v, want *MalformedRowError", err)
	}
	if mre.Index != 1 {
		t.Errorf("Index = %d, want 1", mre.Index)
	}
}

func TestAddGrantIdempotent(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		if err := g.AddGrant("A", "L1"); err != nil {
			t.Fatalf("AddGrant: %v", err)
		}
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestPairsRoundTrip(t *testing.T) {
	pairs := []Pair{
		{"Gold", "Lot A"},
		{"Gold", "Lot B"},
		{"Silver", "Lot B"},
		{"Bronze", "Lot C"},
	}
	g, err := Build(pairs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.Pairs(); !reflect.DeepEqual(got, pairs) {
		t.Errorf("Pairs = %v, want %v", got, pairs)
	}
}
