// internal/cli/options.go
package cli

import (
	"github.com/spf13/cobra"

	"csv2fasta/internal/version"
)

// Options holds all CLI flags and the positional input argument.
type Options struct {
	Input      string
	Output     string
	SeqColumn  string
	IDColumn   string
	ConfigPath string
	Summary    bool
	Quiet      bool
}

// RunFunc executes one parsed invocation.
type RunFunc func(cmd *cobra.Command, opts Options) error

// NewRootCommand builds the csv2fasta command. Errors are left to the caller
// to print so that exit-code mapping stays in one place.
func NewRootCommand(run RunFunc) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "csv2fasta <input>",
		Short: "Convert tabular sequence files to FASTA",
		Long: `csv2fasta converts CSV tables holding biological sequences into FASTA.

The sequence and identifier columns are detected from the header by keyword
matching (leftmost match wins) unless named explicitly. When <input> is a
directory, every *.csv file directly inside it is converted.`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return run(cmd, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.Output, "output", "o", "", "output file (file input) or output directory (directory input)")
	fl.StringVarP(&opts.SeqColumn, "sequence-column", "s", "", "name of the sequence column (default: detect)")
	fl.StringVarP(&opts.IDColumn, "id-column", "i", "", "name of the identifier column (default: detect)")
	fl.StringVarP(&opts.ConfigPath, "config", "c", "", "TOML detection tuning file")
	fl.BoolVar(&opts.Summary, "summary", false, "print a conversion report table")
	fl.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress notices and warnings")

	return cmd
}
