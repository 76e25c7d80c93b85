package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses delimited text from r into a table. The first record is the
// header. Records may have trailing empty fields trimmed by the writer, so
// short rows are padded with empty cells rather than rejected.
func Read(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("table: read header: %w", err)
	}

	t := New(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read row: %w", err)
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		if err := t.Append(rec[:len(header)]...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ReadTSV reads a tab-separated file with a header row.
func ReadTSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()
	t, err := Read(f, '\t')
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", path, err)
	}
	return t, nil
}

// Write encodes the table as delimited text with a header row.
func (t *Table) Write(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("table: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTSV writes the table to path as tab-separated text.
func (t *Table) WriteTSV(path string) error {
	var sb strings.Builder
	if err := t.Write(&sb, '\t'); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
