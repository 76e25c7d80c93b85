package table

import (
	"errors"
	"strings"
	"testing"
)

func TestAppend_RowWidth(t *testing.T) {
	tb := New("a", "b")
	if err := tb.Append("1", "2"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := tb.Append("1"); !errors.Is(err, ErrRowWidth) {
		t.Errorf("Append() error = %v, want ErrRowWidth", err)
	}
	if tb.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tb.Len())
	}
}

func TestFloats(t *testing.T) {
	tb := New("name", "prize")
	tb.Append("TP53", "5.0")
	tb.Append("EGFR", "1.5")

	got, err := tb.Floats("prize")
	if err != nil {
		t.Fatalf("Floats() error = %v", err)
	}
	want := []float64{5.0, 1.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Floats()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := tb.Floats("name"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Floats(name) error = %v, want ErrNotNumeric", err)
	}
	if _, err := tb.Floats("missing"); !errors.Is(err, ErrNoColumn) {
		t.Errorf("Floats(missing) error = %v, want ErrNoColumn", err)
	}
}

func TestSortByFloat_Descending(t *testing.T) {
	tb := New("node", "score")
	tb.Append("A", "0.1")
	tb.Append("B", "0.9")
	tb.Append("C", "0.5")

	if err := tb.SortByFloat("score", true); err != nil {
		t.Fatalf("SortByFloat() error = %v", err)
	}
	order, _ := tb.Strings("node")
	want := []string{"B", "C", "A"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("row %d = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestRead_TSV(t *testing.T) {
	in := "STRING\tdisplay name\n9606.ENSP1\tTP53\n9606.ENSP2\tEGFR\n"
	tb, err := Read(strings.NewReader(in), '\t')
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if tb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tb.Len())
	}
	cell, err := tb.Cell(0, "display name")
	if err != nil {
		t.Fatalf("Cell() error = %v", err)
	}
	if cell != "TP53" {
		t.Errorf("Cell(0, display name) = %q, want TP53", cell)
	}
}

func TestRead_ShortRowPadded(t *testing.T) {
	in := "a\tb\tc\nx\ty\n"
	tb, err := Read(strings.NewReader(in), '\t')
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	cell, _ := tb.Cell(0, "c")
	if cell != "" {
		t.Errorf("Cell(0, c) = %q, want empty", cell)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tb := New("protein1", "protein2", "cost")
	tb.Append("A", "B", "1.0")

	var sb strings.Builder
	if err := tb.Write(&sb, '\t'); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	back, err := Read(strings.NewReader(sb.String()), '\t')
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if back.Len() != 1 || back.Width() != 3 {
		t.Errorf("round trip = %dx%d, want 1x3", back.Len(), back.Width())
	}
}
