// Package permit implements the campus parking entitlement graph.
//
// The package models permits and lots as the two partitions of a bipartite
// directed graph: every edge runs from a permit to a lot and means "this
// permit grants access to this lot". It provides three things:
//
//   - Normalize: turns raw tabular rows (permit name, comma-separated lot
//     list) into a deduplicated sequence of (permit, lot) pairs.
//   - Build / BuildRows: constructs an immutable-after-build graph from
//     those pairs, rejecting identifiers that would be both a permit and
//     a lot.
//   - SearchByPermit / SearchByLot / Validate: reachability queries and an
//     isolated-node integrity check against the built graph.
//
// The package performs no I/O and no logging. Where the data came from
// (CSV, TOML, a database) and what happens with query results (CLI, TUI,
// HTTP API) is the concern of the surrounding packages; every error carries
// the offending identifier or row index so callers can decide how to react.
//
// A Graph is not safe for concurrent mutation, but once built it is only
// ever read, so any number of goroutines may query the same instance.
package permit
