package permit

import (
	"errors"
	"reflect"
	"testing"
)

func buildFixture(t *testing.T) *Graph {
	t.Helper()
	g, err := BuildRows([]Row{
		{Permit: "Gold", Lots: "Lot A, Lot B"},
		{Permit: "Silver", Lots: "Lot B"},
	})
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	return g
}

func TestSearchByPermit(t *testing.T) {
	g := buildFixture(t)

	got, err := g.SearchByPermit("Gold")
	if err != nil {
		t.Fatalf("SearchByPermit: %v", err)
	}
	if want := []string{"Lot A", "Lot B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("lots = %v, want %v", got, want)
	}
}

func TestSearchByLot(t *testing.T) {
	g := buildFixture(t)

	got, err := g.SearchByLot("Lot B")
	if err != nil {
		t.Fatalf("SearchByLot: %v", err)
	}
	if want := []string{"Gold", "Silver"}; !reflect.DeepEqual(got, want) {
		t.Errorf("permits = %v, want %v", got, want)
	}
}

func TestSearchRoundTrip(t *testing.T) {
	g := buildFixture(t)

	for _, pair := range g.Pairs() {
		lots, err := g.SearchByPermit(pair.Permit)
		if err != nil {
			t.Fatalf("SearchByPermit(%s): %v", pair.Permit, err)
		}
		if !slicesContains(lots, pair.Lot) {
			t.Errorf("%s missing from SearchByPermit(%s) = %v", pair.Lot, pair.Permit, lots)
		}

		permits, err := g.SearchByLot(pair.Lot)
		if err != nil {
			t.Fatalf("SearchByLot(%s): %v", pair.Lot, err)
		}
		if !slicesContains(permits, pair.Permit) {
			t.Errorf("%s missing from SearchByLot(%s) = %v", pair.Permit, pair.Lot, permits)
		}
	}
}

func slicesContains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func TestSearchNotFound(t *testing.T) {
	g := buildFixture(t)

	tests := []struct {
		name     string
		query    func() ([]string, error)
		wantID   string
		wantKind Kind
	}{
		{"MissingPermit", func() ([]string, error) { return g.SearchByPermit("nonexistent") }, "nonexistent", KindPermit},
		{"MissingLot", func() ([]string, error) { return g.SearchByLot("nonexistent") }, "nonexistent", KindLot},
		// A lot ID queried as a permit is not a permit node.
		{"LotAsPermit", func() ([]string, error) { return g.SearchByPermit("Lot A") }, "Lot A", KindPermit},
		{"PermitAsLot", func() ([]string, error) { return g.SearchByLot("Gold") }, "Gold", KindLot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query()
			var nfe *NodeNotFoundError
			if !errors.As(err, &nfe) {
				t.Fatalf("error = %v, want *NodeNotFoundError", err)
			}
			if nfe.ID != tt.wantID || nfe.Kind != tt.wantKind {
				t.Errorf("got %s %q, want %s %q", nfe.Kind, nfe.ID, tt.wantKind, tt.wantID)
			}
		})
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	g := buildFixture(t)
	before := g.Pairs()

	g.SearchByPermit("nonexistent")
	g.SearchByLot("nonexistent")
	lots, _ := g.SearchByPermit("Gold")
	lots[0] = "tampered" // callers get copies, not internal slices

	if !reflect.DeepEqual(g.Pairs(), before) {
		t.Error("queries mutated the graph")
	}
	if fresh, _ := g.SearchByPermit("Gold"); fresh[0] != "Lot A" {
		t.Error("mutating a query result leaked into graph storage")
	}
}

func TestValidate(t *testing.T) {
	t.Run("CleanGraph", func(t *testing.T) {
		g := buildFixture(t)
		rep := g.Validate()
		if !rep.Clean() {
			t.Errorf("Validate = %+v, want clean", rep)
		}
	})

	t.Run("IsolatedPermit", func(t *testing.T) {
		g := New()
		if err := g.AddPermit("Orphan"); err != nil {
			t.Fatalf("AddPermit: %v", err)
		}
		rep := g.Validate()
		if !reflect.DeepEqual(rep.IsolatedPermits, []string{"Orphan"}) {
			t.Errorf("IsolatedPermits = %v, want [Orphan]", rep.IsolatedPermits)
		}
		if rep.Clean() {
			t.Error("Clean() should be false with an isolated permit")
		}
	})

	t.Run("IsolatedLot", func(t *testing.T) {
		g := buildFixture(t)
		if err := g.AddLot("Lot Z"); err != nil {
			t.Fatalf("AddLot: %v", err)
		}
		rep := g.Validate()
		if !reflect.DeepEqual(rep.IsolatedLots, []string{"Lot Z"}) {
			t.Errorf("IsolatedLots = %v, want [Lot Z]", rep.IsolatedLots)
		}
		if len(rep.IsolatedPermits) != 0 {
			t.Errorf("IsolatedPermits = %v, want none", rep.IsolatedPermits)
		}
	})
}

func TestEndToEnd(t *testing.T) {
	rows := []Row{
		{Permit: "Gold", Lots: "Lot A, Lot B"},
		{Permit: "Silver", Lots: "Lot B"},
	}
	pairs, err := Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	g, err := Build(pairs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if lots, _ := g.SearchByPermit("Gold"); !reflect.DeepEqual(lots, []string{"Lot A", "Lot B"}) {
		t.Errorf("SearchByPermit(Gold) = %v", lots)
	}
	if permits, _ := g.SearchByLot("Lot B"); !reflect.DeepEqual(permits, []string{"Gold", "Silver"}) {
		t.Errorf("SearchByLot(Lot B) = %v", permits)
	}
	if rep := g.Validate(); !rep.Clean() {
		t.Errorf("Validate = %+v, want clean", rep)
	}
}
