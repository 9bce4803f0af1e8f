// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"csv2fasta-core/resolve"
	"csv2fasta/internal/cli"
	"csv2fasta/internal/cmdutil"
	"csv2fasta/internal/config"
	"csv2fasta/internal/pipeline"
	"csv2fasta/internal/summary"
)

// exitError carries a non-usage exit code out of a command run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// RunContext parses argv, runs the conversion, and returns the process exit
// code: 0 success (including best-effort batch with per-file failures),
// 1 failed single-file conversion, 2 usage or invalid input, 3 stdout write
// failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	// A nil slice would make cobra fall back to os.Args.
	if argv == nil {
		argv = []string{}
	}

	root := cli.NewRootCommand(execute)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if cmdutil.IsBrokenPipe(ee.err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", ee.err)
		return ee.code
	}

	// Everything else is a usage problem: bad flags, bad input path, bad
	// config. Cobra is silenced, so report here.
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	_, _ = fmt.Fprint(stderr, root.UsageString())
	return 2
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(cmd *cobra.Command, opts cli.Options) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return err
		}
	}
	ov := resolve.Overrides{Sequence: opts.SeqColumn, ID: opts.IDColumn}

	info, err := os.Stat(opts.Input)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		return fmt.Errorf("input %q is not a valid file or directory", opts.Input)
	}
	if info.IsDir() {
		return runBatch(cmd, opts, cfg, ov)
	}
	return runSingle(cmd, opts, cfg, ov)
}

func runSingle(cmd *cobra.Command, opts cli.Options, cfg config.Config, ov resolve.Overrides) error {
	outPath := opts.Output
	if outPath == "" {
		outPath = pipeline.DeriveOutputPath(opts.Input, cfg.OutputExtension)
	}

	res := pipeline.ConvertFile(pipeline.Job{
		InputPath:  opts.Input,
		OutputPath: outPath,
		Overrides:  ov,
		Keywords:   cfg.Keywords(),
	})
	if opts.Summary {
		summary.Render(cmd.OutOrStdout(), []pipeline.Result{res})
	}
	if res.Err != nil {
		return &exitError{code: 1, err: res.Err}
	}
	return notice(cmd.OutOrStdout(), opts.Quiet, res)
}

func runBatch(cmd *cobra.Command, opts cli.Options, cfg config.Config, ov resolve.Overrides) error {
	results, err := pipeline.RunBatch(pipeline.BatchOptions{
		InputDir:  opts.Input,
		OutputDir: opts.Output,
		TableExt:  cfg.TableExtension,
		OutputExt: cfg.OutputExtension,
		Overrides: ov,
		Keywords:  cfg.Keywords(),
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			cmdutil.Warnf(cmd.ErrOrStderr(), opts.Quiet, "skipping %s: %v", r.InputPath, r.Err)
			continue
		}
		if err := notice(cmd.OutOrStdout(), opts.Quiet, r); err != nil {
			return err
		}
	}
	if opts.Summary {
		summary.Render(cmd.OutOrStdout(), results)
	}
	// Per-file failures were reported above; the batch itself succeeded.
	return nil
}

func notice(stdout io.Writer, quiet bool, r pipeline.Result) error {
	err := cmdutil.Noticef(stdout, quiet, "converted %s -> %s (%d records)", r.InputPath, r.OutputPath, r.Records)
	if err != nil {
		return &exitError{code: 3, err: err}
	}
	return nil
}
