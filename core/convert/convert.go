// core/convert/convert.go
package convert

import (
	"fmt"

	"csv2fasta-core/fasta"
	"csv2fasta-core/resolve"
	"csv2fasta-core/table"
)

// Emit builds exactly one FASTA record per table row, in row order. When the
// mapping has no identifier column, records are named "Sequence_<n>" with n
// counting from 1 over the table's rows.
func Emit(t *table.Table, m resolve.Mapping) ([]fasta.Record, error) {
	seqIdx, ok := t.ColumnIndex(m.Sequence)
	if !ok {
		return nil, fmt.Errorf("sequence %w: %q", resolve.ErrColumnNotFound, m.Sequence)
	}
	idIdx := -1
	if m.ID != "" {
		idIdx, ok = t.ColumnIndex(m.ID)
		if !ok {
			return nil, fmt.Errorf("id %w: %q", resolve.ErrColumnNotFound, m.ID)
		}
	}

	records := make([]fasta.Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		id := fmt.Sprintf("Sequence_%d", i+1)
		if idIdx >= 0 {
			id = row[idIdx]
		}
		records = append(records, fasta.Record{ID: id, Seq: row[seqIdx]})
	}
	return records, nil
}
