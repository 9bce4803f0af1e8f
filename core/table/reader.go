// core/table/reader.go
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrRead marks a source table that could not be opened or parsed.
var ErrRead = errors.New("table read error")

// ReadCSV parses the file at path as a comma-separated table with a header
// line.
func ReadCSV(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() { _ = fh.Close() }()

	t, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV text from r. The first record is the header; every data
// row must have the same number of fields as the header.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header line", ErrRead)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		rows = append(rows, rec)
	}
	return New(header, rows), nil
}
