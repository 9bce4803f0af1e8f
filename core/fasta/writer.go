// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"
)

// Record is one FASTA entry: the header identifier and its raw sequence text.
type Record struct {
	ID  string
	Seq string
}

// Write serializes records in order as ">id\nseq\n". Sequences are written
// verbatim, with no wrapping and no blank line between records.
func Write(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq); err != nil {
			return err
		}
	}
	return nil
}
