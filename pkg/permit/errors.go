package permit

import (
	"errors"
	"fmt"
)

// ErrEmptyIdentifier is returned by [Graph.AddPermit], [Graph.AddLot] and
// [Graph.AddGrant] when an identifier is empty. All nodes must have
// non-empty identifiers.
var ErrEmptyIdentifier = errors.New("identifier must not be empty")

// MalformedRowError reports a source row whose permit field is empty or
// missing after trimming. A lot list without an owning permit is
// meaningless, so [Normalize] and [BuildRows] refuse the row instead of
// guessing. The caller decides whether to skip the row or abort the load.
type MalformedRowError struct {
	Index int    // zero-based position of the row in the input
	Lots  string // raw lot-list field, for context in error output
}

// Error implements the error interface.
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: permit identifier is empty (lot list %q)", e.Index, e.Lots)
}

// IdentifierCollisionError reports a string used as both a permit and a lot
// identifier across the input set. Such input cannot produce a bipartite
// graph, so the whole build attempt fails; fix the source data and rebuild.
type IdentifierCollisionError struct {
	ID       string // the ambiguous identifier
	Existing Kind   // kind the identifier was first recorded as
	Proposed Kind   // kind the conflicting insertion asked for
}

// Error implements the error interface.
func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("identifier %q is already a %s and cannot also be a %s", e.ID, e.Existing, e.Proposed)
}

// NodeNotFoundError reports a query for an identifier that is absent from
// the graph (or present with the other kind). Queries never mutate the
// graph, so the error is recoverable: an interactive frontend can report
// "not found" and re-prompt.
type NodeNotFoundError struct {
	ID   string // the identifier that was looked up
	Kind Kind   // the kind the query expected
}

// Error implements the error interface.
func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
