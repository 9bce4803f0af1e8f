// internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"fmt"
	"os"

	"csv2fasta-core/convert"
	"csv2fasta-core/fasta"
	"csv2fasta-core/resolve"
	"csv2fasta-core/table"
)

// Job is one table-to-FASTA conversion.
type Job struct {
	InputPath  string
	OutputPath string
	Overrides  resolve.Overrides
	Keywords   resolve.Keywords
}

// Result describes one finished or failed job.
type Result struct {
	InputPath  string
	OutputPath string
	Records    int
	Err        error
}

// ConvertFile runs one job: read the table, resolve the column mapping, emit
// FASTA records, and write them to the destination. The destination file is
// created or truncated; a partial file from a failed write is left in place.
func ConvertFile(job Job) Result {
	res := Result{InputPath: job.InputPath, OutputPath: job.OutputPath}

	t, err := table.ReadCSV(job.InputPath)
	if err != nil {
		res.Err = err
		return res
	}
	m, err := resolve.Resolve(t.Columns, job.Overrides, job.Keywords)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.InputPath, err)
		return res
	}
	records, err := convert.Emit(t, m)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.InputPath, err)
		return res
	}

	out, err := os.Create(job.OutputPath)
	if err != nil {
		res.Err = fmt.Errorf("create %s: %w", job.OutputPath, err)
		return res
	}
	w := bufio.NewWriter(out)
	werr := fasta.Write(w, records)
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := out.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		res.Err = fmt.Errorf("write %s: %w", job.OutputPath, werr)
		return res
	}

	res.Records = len(records)
	return res
}
