// Package idmap translates between STRING protein identifiers and display
// gene symbols using a tab-separated mapping file.
//
// Translation is deliberately lenient: identifiers absent from the map pass
// through unchanged, so partially-mapped node lists survive a round trip
// without manual cleanup. The map is rebuilt from the file on every Load;
// nothing is cached between calls.
package idmap

import (
	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/table"
)

// Column names required in the mapping file.
const (
	ColumnSTRING  = "STRING"
	ColumnDisplay = "display name"
)

// Map is an immutable bidirectional mapping between STRING IDs and display
// names.
type Map struct {
	toDisplay map[string]string
	toSTRING  map[string]string
}

// Load reads a tab-separated mapping file with at least the "STRING" and
// "display name" columns and builds the bidirectional map.
func Load(path string) (*Map, error) {
	t, err := table.ReadTSV(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "ID map %s", path)
	}
	return FromTable(t)
}

// FromTable builds a map from an already-loaded mapping table.
func FromTable(t *table.Table) (*Map, error) {
	for _, col := range []string{ColumnSTRING, ColumnDisplay} {
		if !t.HasColumn(col) {
			return nil, errors.New(errors.ErrCodeMissingColumn, "ID map lacks column %q", col)
		}
	}
	ids, err := t.Strings(ColumnSTRING)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "ID map")
	}
	names, err := t.Strings(ColumnDisplay)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "ID map")
	}

	m := &Map{
		toDisplay: make(map[string]string, len(ids)),
		toSTRING:  make(map[string]string, len(ids)),
	}
	for i := range ids {
		m.toDisplay[ids[i]] = names[i]
		m.toSTRING[names[i]] = ids[i]
	}
	return m, nil
}

// ToDisplay translates STRING IDs to display names; unmapped IDs pass
// through unchanged.
func (m *Map) ToDisplay(ids []string) []string {
	return translate(ids, m.toDisplay)
}

// ToSTRING translates display names to STRING IDs; unmapped names pass
// through unchanged.
func (m *Map) ToSTRING(names []string) []string {
	return translate(names, m.toSTRING)
}

func translate(in []string, lookup map[string]string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		if mapped, ok := lookup[s]; ok {
			out[i] = mapped
		} else {
			out[i] = s
		}
	}
	return out
}

// GeneSymbols loads the mapping file at path and converts a list of STRING
// IDs to gene symbols in one call.
func GeneSymbols(ids []string, path string) ([]string, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return m.ToDisplay(ids), nil
}

// StringIDs loads the mapping file at path and converts a list of gene
// symbols to STRING IDs in one call.
func StringIDs(names []string, path string) ([]string, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return m.ToSTRING(names), nil
}
