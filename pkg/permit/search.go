package permit

import "slices"

// SearchByPermit returns every lot reachable from the given permit, in BFS
// discovery order with ties broken by insertion order.
//
// The graph is currently exactly two levels deep, so the traversal visits
// precisely the direct successors - but it is written as a real BFS so that
// transitive entitlements (a master permit granting the lots of subordinate
// permits) would be found without changes here.
//
// Fails with a *NodeNotFoundError of kind permit when the identifier is not
// a permit node. A permit with zero grants yields an empty result, not an
// error. The returned slice is a copy; queries never mutate the graph.
func (g *Graph) SearchByPermit(permitID string) ([]string, error) {
	if k, ok := g.kinds[permitID]; !ok || k != KindPermit {
		return nil, &NodeNotFoundError{ID: permitID, Kind: KindPermit}
	}

	visited := map[string]bool{permitID: true}
	queue := []string{permitID}
	var found []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.grants[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			if g.kinds[next] == KindLot {
				found = append(found, next)
			}
			queue = append(queue, next)
		}
	}
	return found, nil
}

// SearchByLot returns every permit with a direct edge into the given lot,
// in insertion order.
//
// Fails with a *NodeNotFoundError of kind lot when the identifier is not a
// lot node. A lot with zero holders yields an empty result, not an error.
// The returned slice is a copy; queries never mutate the graph.
func (g *Graph) SearchByLot(lotID string) ([]string, error) {
	if k, ok := g.kinds[lotID]; !ok || k != KindLot {
		return nil, &NodeNotFoundError{ID: lotID, Kind: KindLot}
	}
	return slices.Clone(g.holders[lotID]), nil
}

// Report lists nodes with no incident edges, found by [Graph.Validate].
type Report struct {
	IsolatedPermits []string `json:"isolated_permits"`
	IsolatedLots    []string `json:"isolated_lots"`
}

// Clean reports whether no isolated nodes were found.
func (r Report) Clean() bool {
	return len(r.IsolatedPermits) == 0 && len(r.IsolatedLots) == 0
}

// Validate scans for isolated nodes - nodes with neither outgoing nor
// incoming edges - and reports them per partition, in insertion order.
//
// [Build] only ever creates nodes together with an edge, so a graph built
// purely from pairs has nothing to report. Isolation still occurs through
// [BuildRows] (a permit row with an empty lot list) and through the node
// insertion API, so the scan is a real degree check, not a formality.
// Validate has no side effects.
func (g *Graph) Validate() Report {
	var rep Report
	for _, id := range g.permits {
		if len(g.grants[id]) == 0 && len(g.holders[id]) == 0 {
			rep.IsolatedPermits = append(rep.IsolatedPermits, id)
		}
	}
	for _, id := range g.lots {
		if len(g.holders[id]) == 0 && len(g.grants[id]) == 0 {
			rep.IsolatedLots = append(rep.IsolatedLots, id)
		}
	}
	return rep
}
