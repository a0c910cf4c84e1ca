package permit

import (
	"slices"
	"strings"
)

// Kind distinguishes the two node partitions of the graph.
type Kind int

const (
	// KindPermit marks a node representing an access credential.
	KindPermit Kind = iota
	// KindLot marks a node representing a physical parking location.
	KindLot
)

// String returns the lowercase name of the kind ("permit" or "lot").
func (k Kind) String() string {
	if k == KindLot {
		return "lot"
	}
	return "permit"
}

// Pair is one canonical (permit, lot) grant produced by [Normalize].
type Pair struct {
	Permit string
	Lot    string
}

// Row is a raw input row as supplied by a tabular data source: a permit
// name and its comma-separated lot list, both possibly padded with
// whitespace. Where the row came from (CSV, TOML, a database) is
// irrelevant here.
type Row struct {
	Permit string
	Lots   string
}

// Graph is the bipartite permit→lot entitlement graph.
//
// Nodes are kept in a single identifier→kind table, which makes the
// "no identifier is both a permit and a lot" invariant structurally
// enforced rather than convention-based. Adjacency is stored in both
// directions with insertion order preserved, so query results are
// deterministic across repeated calls.
//
// The zero value is not usable - use [New], [Build] or [BuildRows].
// A Graph must not be mutated once queries have started; rebuilding
// means constructing a fresh Graph from a fresh row set.
type Graph struct {
	kinds   map[string]Kind
	permits []string            // permit IDs in insertion order
	lots    []string            // lot IDs in insertion order
	grants  map[string][]string // permit ID -> lot IDs, insertion order
	holders map[string][]string // lot ID -> permit IDs, insertion order
	edges   int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		kinds:   make(map[string]Kind),
		grants:  make(map[string][]string),
		holders: make(map[string][]string),
	}
}

// AddPermit adds a permit node with no edges. Adding an existing permit is
// a no-op. Returns ErrEmptyIdentifier for an empty ID, or an
// *IdentifierCollisionError if the ID is already in use as a lot.
func (g *Graph) AddPermit(id string) error {
	return g.addNode(id, KindPermit)
}

// AddLot adds a lot node with no edges. Adding an existing lot is a no-op.
// Returns ErrEmptyIdentifier for an empty ID, or an
// *IdentifierCollisionError if the ID is already in use as a permit.
func (g *Graph) AddLot(id string) error {
	return g.addNode(id, KindLot)
}

func (g *Graph) addNode(id string, kind Kind) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if existing, ok := g.kinds[id]; ok {
		if existing != kind {
			return &IdentifierCollisionError{ID: id, Existing: existing, Proposed: kind}
		}
		return nil
	}
	g.kinds[id] = kind
	if kind == KindPermit {
		g.permits = append(g.permits, id)
	} else {
		g.lots = append(g.lots, id)
	}
	return nil
}

// AddGrant adds a directed permit→lot edge, creating either endpoint node
// if it does not exist yet. Duplicate grants collapse to one edge, so the
// insertion is idempotent. Returns an *IdentifierCollisionError when either
// identifier is already in use with the opposite kind.
func (g *Graph) AddGrant(permitID, lotID string) error {
	if err := g.AddPermit(permitID); err != nil {
		return err
	}
	if err := g.AddLot(lotID); err != nil {
		return err
	}
	if slices.Contains(g.grants[permitID], lotID) {
		return nil
	}
	g.grants[permitID] = append(g.grants[permitID], lotID)
	g.holders[lotID] = append(g.holders[lotID], permitID)
	g.edges++
	return nil
}

// Build constructs a graph from canonical pairs, typically the output of
// [Normalize]. One permit node is created per distinct permit string, one
// lot node per distinct lot string, one edge per distinct pair. Building is
// deterministic: the same pair sequence always yields the same node and
// edge sets, and building twice never duplicates edges.
//
// Build fails with an *IdentifierCollisionError if any string appears as a
// permit in one pair and as a lot in another.
func Build(pairs []Pair) (*Graph, error) {
	g := New()
	for _, p := range pairs {
		if err := g.AddGrant(p.Permit, p.Lot); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildRows normalizes raw rows and builds the graph in one step.
//
// Unlike Normalize+Build, a well-formed row whose lot list contains no
// usable tokens still creates its permit node, with zero outgoing edges.
// Fails with a *MalformedRowError for a row without a permit identifier,
// or an *IdentifierCollisionError for kind-ambiguous identifiers.
func BuildRows(rows []Row) (*Graph, error) {
	g := New()
	for i, r := range rows {
		p := strings.TrimSpace(r.Permit)
		if p == "" {
			return nil, &MalformedRowError{Index: i, Lots: r.Lots}
		}
		if err := g.AddPermit(p); err != nil {
			return nil, err
		}
		for _, lot := range splitLots(r.Lots) {
			if err := g.AddGrant(p, lot); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Permits returns all permit identifiers in insertion order.
// The returned slice is a copy.
func (g *Graph) Permits() []string { return slices.Clone(g.permits) }

// Lots returns all lot identifiers in insertion order.
// The returned slice is a copy.
func (g *Graph) Lots() []string { return slices.Clone(g.lots) }

// KindOf returns the kind of the node with the given identifier and true,
// or zero Kind and false if the identifier is absent.
func (g *Graph) KindOf(id string) (Kind, bool) {
	k, ok := g.kinds[id]
	return k, ok
}

// NodeCount returns the total number of permit and lot nodes.
func (g *Graph) NodeCount() int { return len(g.kinds) }

// EdgeCount returns the number of distinct permit→lot edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Pairs returns every edge as a (permit, lot) pair, ordered by permit
// insertion order and, within a permit, by grant insertion order. Feeding
// the result back into [Build] reproduces an equivalent graph.
func (g *Graph) Pairs() []Pair {
	pairs := make([]Pair, 0, g.edges)
	for _, p := range g.permits {
		for _, l := range g.grants[p] {
			pairs = append(pairs, Pair{Permit: p, Lot: l})
		}
	}
	return pairs
}
