package permit

import "strings"

// Normalize transforms raw rows into the canonical deduplicated sequence of
// (permit, lot) pairs that [Build] consumes.
//
// For each row the lot-list field is split on commas, every token is
// trimmed of surrounding whitespace, and empty tokens are discarded - a
// trailing comma or an empty cell never produces a spurious lot named "".
// Permit identifiers are trimmed the same way. Duplicate pairs across rows
// collapse to the first occurrence, so the output order is the first-seen
// order and is deterministic for a given input.
//
// Normalize fails with a *MalformedRowError when a row's permit field is
// empty after trimming. It has no side effects and touches no I/O.
func Normalize(rows []Row) ([]Pair, error) {
	seen := make(map[Pair]struct{})
	var pairs []Pair
	for i, r := range rows {
		p := strings.TrimSpace(r.Permit)
		if p == "" {
			return nil, &MalformedRowError{Index: i, Lots: r.Lots}
		}
		for _, lot := range splitLots(r.Lots) {
			pair := Pair{Permit: p, Lot: lot}
			if _, dup := seen[pair]; dup {
				continue
			}
			seen[pair] = struct{}{}
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}

// splitLots splits a raw comma-separated lot list into trimmed, non-empty
// tokens. Duplicates within a single cell are kept; deduplication happens
// at the pair level.
func splitLots(raw string) []string {
	var lots []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			lots = append(lots, tok)
		}
	}
	return lots
}
