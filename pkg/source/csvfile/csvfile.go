// Package csvfile reads permit rows from a CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/parkops/lotmap/pkg/permit"
	"github.com/parkops/lotmap/pkg/source"
)

// Source reads rows from a two-column CSV file: permit name, lot list.
// Lot lists containing commas must be quoted per standard CSV rules.
// An optional header row ("permit,lots", any casing) is skipped.
type Source struct {
	path string
}

// New creates a CSV source for the file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source for logs.
func (s *Source) Name() string { return "csv:" + s.path }

// Rows reads the whole file. Field contents are passed through raw.
func (s *Source) Rows(ctx context.Context) ([]permit.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // lot column may be absent entirely
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	rows := make([]permit.Row, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		row := permit.Row{Permit: rec[0]}
		if len(rec) > 1 {
			row.Lots = rec[1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "permit")
}

var _ source.Source = (*Source)(nil)
