// Package table provides the ordered, named-column tables that forester
// passes between its components: protein-interaction edge lists, prize
// tables for the PCSF solver, and per-node summary tables.
//
// A Table is row-major with string cells. Columns are addressed by name or
// by position; numeric views convert on demand. Tables are plain values with
// no shared state; every loader builds a fresh one.
package table

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrNoColumn is returned when a named column does not exist.
	ErrNoColumn = errors.New("table: no such column")

	// ErrRowWidth is returned by [Table.Append] when a row's length does
	// not match the column count.
	ErrRowWidth = errors.New("table: row width mismatch")

	// ErrNotNumeric is returned by [Table.Floats] when a cell cannot be
	// parsed as a float.
	ErrNotNumeric = errors.New("table: non-numeric cell")
)

// Table is an ordered collection of rows under named columns.
type Table struct {
	cols []string
	rows [][]string
}

// New creates an empty table with the given column names.
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Append adds a row. The row must have exactly one cell per column.
func (t *Table) Append(row ...string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowWidth, len(row), len(t.cols))
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

// Row returns the i-th row. The returned slice is owned by the table.
func (t *Table) Row(i int) []string { return t.rows[i] }

// Cell returns the cell at row i in the named column.
func (t *Table) Cell(i int, name string) (string, error) {
	ci := t.columnIndex(name)
	if ci < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	return t.rows[i][ci], nil
}

// Strings returns a copy of the named column as a string slice.
func (t *Table) Strings(name string) ([]string, error) {
	ci := t.columnIndex(name)
	if ci < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[ci]
	}
	return out, nil
}

// StringsAt returns a copy of the column at position i.
func (t *Table) StringsAt(i int) ([]string, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, fmt.Errorf("%w: index %d", ErrNoColumn, i)
	}
	return t.Strings(t.cols[i])
}

// Floats returns the named column parsed as float64 values.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q", ErrNotNumeric, name, i, s)
		}
		out[i] = v
	}
	return out, nil
}

// FloatsAt returns the column at position i parsed as float64 values.
func (t *Table) FloatsAt(i int) ([]float64, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, fmt.Errorf("%w: index %d", ErrNoColumn, i)
	}
	return t.Floats(t.cols[i])
}

// SortByFloat reorders rows by the named column parsed as floats.
// Descending order puts the largest values first, matching the summary
// convention of listing the most central nodes at the top.
func (t *Table) SortByFloat(name string, descending bool) error {
	keys, err := t.Floats(name)
	if err != nil {
		return err
	}
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return keys[idx[a]] > keys[idx[b]]
		}
		return keys[idx[a]] < keys[idx[b]]
	})
	rows := make([][]string, len(t.rows))
	for i, j := range idx {
		rows[i] = t.rows[j]
	}
	t.rows = rows
	return nil
}
