// Package source defines where raw permit rows come from.
//
// The graph engine consumes an already-parsed sequence of rows and does not
// care about their origin; this package is the seam. Each backend (CSV
// file, TOML dataset, MongoDB collection) implements Source and hands the
// rows to the engine untouched - trimming, splitting and deduplication are
// the normalizer's job, not the source's.
package source

import (
	"context"

	"github.com/parkops/lotmap/pkg/permit"
)

// Source supplies raw permit rows from some tabular backend.
type Source interface {
	// Name identifies the source for logs and error messages,
	// e.g. "csv:data/permits.csv".
	Name() string

	// Rows reads all rows from the backend. Implementations must not
	// normalize field contents; raw whitespace and empty cells pass
	// through so the normalizer sees the data as-is.
	Rows(ctx context.Context) ([]permit.Row, error)
}
