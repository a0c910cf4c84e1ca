// Package tomlfile reads permit rows from a TOML dataset file.
//
// The expected layout is one table per permit:
//
//	[[permit]]
//	name = "Gold"
//	lots = "Lot A, Lot B"
package tomlfile

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/parkops/lotmap/pkg/permit"
	"github.com/parkops/lotmap/pkg/source"
)

// Source reads rows from a TOML dataset file.
type Source struct {
	path string
}

// New creates a TOML source for the file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source for logs.
func (s *Source) Name() string { return "toml:" + s.path }

type document struct {
	Permit []entry `toml:"permit"`
}

type entry struct {
	Name string `toml:"name"`
	Lots string `toml:"lots"`
}

// Rows decodes the whole file. Field contents are passed through raw.
func (s *Source) Rows(ctx context.Context) ([]permit.Row, error) {
	var doc document
	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	rows := make([]permit.Row, len(doc.Permit))
	for i, e := range doc.Permit {
		rows[i] = permit.Row{Permit: e.Name, Lots: e.Lots}
	}
	return rows, nil
}

var _ source.Source = (*Source)(nil)
