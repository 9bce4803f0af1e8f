// core/resolve/resolve_test.go
package resolve

import (
	"errors"
	"testing"
)

func mustResolve(t *testing.T, columns []string, ov Overrides) Mapping {
	t.Helper()
	m, err := Resolve(columns, ov, DefaultKeywords())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return m
}

func TestResolvePicksLeftmostSequenceColumn(t *testing.T) {
	m := mustResolve(t, []string{"accession_id", "protein_sequence", "aa_seq"}, Overrides{})
	if m.Sequence != "protein_sequence" {
		t.Fatalf("want leftmost sequence column, got %q", m.Sequence)
	}
	if m.ID != "accession_id" {
		t.Fatalf("want leftmost id column, got %q", m.ID)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	m := mustResolve(t, []string{"Accession", "Protein_Sequence"}, Overrides{})
	if m.Sequence != "Protein_Sequence" || m.ID != "Accession" {
		t.Fatalf("unexpected mapping %+v", m)
	}
}

func TestResolveNoSequenceColumn(t *testing.T) {
	_, err := Resolve([]string{"col_a", "col_b"}, Overrides{}, DefaultKeywords())
	if !errors.Is(err, ErrNoSequenceColumn) {
		t.Fatalf("want ErrNoSequenceColumn, got %v", err)
	}
}

func TestResolveIDColumnOptional(t *testing.T) {
	m := mustResolve(t, []string{"col_a", "seq"}, Overrides{})
	if m.Sequence != "seq" || m.ID != "" {
		t.Fatalf("unexpected mapping %+v", m)
	}
}

func TestResolveOverridesTakePriority(t *testing.T) {
	cols := []string{"accession", "protein_sequence", "alt_seq", "note"}
	m := mustResolve(t, cols, Overrides{Sequence: "alt_seq", ID: "note"})
	if m.Sequence != "alt_seq" || m.ID != "note" {
		t.Fatalf("overrides ignored: %+v", m)
	}
}

func TestResolveUnknownSequenceOverride(t *testing.T) {
	_, err := Resolve([]string{"a", "b"}, Overrides{Sequence: "missing"}, DefaultKeywords())
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("want ErrColumnNotFound, got %v", err)
	}
}

func TestResolveUnknownIDOverride(t *testing.T) {
	_, err := Resolve([]string{"seq"}, Overrides{ID: "missing"}, DefaultKeywords())
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("want ErrColumnNotFound, got %v", err)
	}
}

func TestResolveCustomKeywords(t *testing.T) {
	kw := Keywords{Sequence: []string{"orf"}, ID: []string{"locus"}}
	m, err := Resolve([]string{"locus_tag", "orf1"}, Overrides{}, kw)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if m.Sequence != "orf1" || m.ID != "locus_tag" {
		t.Fatalf("unexpected mapping %+v", m)
	}
}

func TestResolveTieBreakIsHeaderOrder(t *testing.T) {
	// Both columns qualify; the leftmost wins regardless of which keyword hit.
	m := mustResolve(t, []string{"aa_count", "sequence"}, Overrides{})
	if m.Sequence != "aa_count" {
		t.Fatalf("want first match in header order, got %q", m.Sequence)
	}
}
