// core/resolve/resolve.go
package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Built-in detection keywords. A column qualifies when its lowercase name
// contains any keyword; the leftmost qualifying column in header order wins.
var (
	sequenceKeywords = []string{"sequence", "seq", "protein", "aa"}
	idKeywords       = []string{"id", "identifier", "name", "accession"}
)

var (
	// ErrNoSequenceColumn is returned when no column matches the sequence
	// keywords and no explicit override was given.
	ErrNoSequenceColumn = errors.New("no sequence column detected")
	// ErrColumnNotFound is returned when an explicitly named column does not
	// exist in the header. Overrides are validated here, before any row is
	// read.
	ErrColumnNotFound = errors.New("column not found")
)

// Mapping names which column holds the sequence and which, if any, holds the
// record identifier. An empty ID means positional identifiers are used.
type Mapping struct {
	Sequence string
	ID       string
}

// Overrides carries explicit column choices; an empty field means detect.
type Overrides struct {
	Sequence string
	ID       string
}

// Keywords are the substring sets used for header detection.
type Keywords struct {
	Sequence []string
	ID       []string
}

// DefaultKeywords returns fresh copies of the built-in detection sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Sequence: append([]string(nil), sequenceKeywords...),
		ID:       append([]string(nil), idKeywords...),
	}
}

// Resolve determines the column mapping for a header. Explicit overrides are
// taken verbatim after an existence check; otherwise columns are scanned in
// declared order and the first keyword match wins. A missing identifier
// column is not an error.
func Resolve(columns []string, ov Overrides, kw Keywords) (Mapping, error) {
	var m Mapping

	if ov.Sequence != "" {
		if !contains(columns, ov.Sequence) {
			return m, fmt.Errorf("sequence %w: %q", ErrColumnNotFound, ov.Sequence)
		}
		m.Sequence = ov.Sequence
	} else {
		col, ok := firstMatch(columns, kw.Sequence)
		if !ok {
			return m, ErrNoSequenceColumn
		}
		m.Sequence = col
	}

	if ov.ID != "" {
		if !contains(columns, ov.ID) {
			return m, fmt.Errorf("id %w: %q", ErrColumnNotFound, ov.ID)
		}
		m.ID = ov.ID
		return m, nil
	}
	if col, ok := firstMatch(columns, kw.ID); ok {
		m.ID = col
	}
	return m, nil
}

func firstMatch(columns, keywords []string) (string, bool) {
	for _, c := range columns {
		lc := strings.ToLower(c)
		for _, k := range keywords {
			if strings.Contains(lc, k) {
				return c, true
			}
		}
	}
	return "", false
}

func contains(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
