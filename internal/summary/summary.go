// internal/summary/summary.go
package summary

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"csv2fasta/internal/pipeline"
)

// Render writes a conversion report table for the finished jobs. Failed jobs
// appear with their error text instead of an output path.
func Render(w io.Writer, results []pipeline.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(styleFor(w))
	tw.AppendHeader(table.Row{"Input", "Output", "Records", "Status"})

	for _, r := range results {
		out, records, status := r.OutputPath, fmt.Sprint(r.Records), "ok"
		if r.Err != nil {
			out, records, status = "-", "-", fmt.Sprintf("failed: %v", r.Err)
		}
		tw.AppendRow(table.Row{r.InputPath, out, records, status})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}

// styleFor picks the rounded style for terminals and plain ASCII for pipes
// and files.
func styleFor(w io.Writer) table.Style {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return table.StyleRounded
	}
	return table.StyleDefault
}
