// internal/pipeline/batch.go
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"csv2fasta-core/resolve"
)

// ErrNotADirectory marks a batch invocation on a path that does not exist or
// is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// BatchOptions configures a directory-wide conversion.
type BatchOptions struct {
	InputDir  string
	OutputDir string // empty: same as InputDir
	TableExt  string // matched case-insensitively against file extensions
	OutputExt string
	Overrides resolve.Overrides
	Keywords  resolve.Keywords
}

// RunBatch converts every qualifying file directly inside InputDir, one job
// per file in sorted name order. Subdirectories and other extensions are
// ignored. A failed job never aborts the batch: its Result carries the error
// and the remaining files are still processed.
func RunBatch(o BatchOptions) ([]Result, error) {
	info, err := os.Stat(o.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, o.InputDir)
	}

	outDir := o.OutputDir
	if outDir == "" {
		outDir = o.InputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(o.InputDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", o.InputDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), o.TableExt) {
			continue
		}
		names = append(names, e.Name())
	}
	// Directory listing order is platform-dependent; sort for determinism.
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, ConvertFile(Job{
			InputPath:  filepath.Join(o.InputDir, name),
			OutputPath: filepath.Join(outDir, DeriveOutputName(name, o.OutputExt)),
			Overrides:  o.Overrides,
			Keywords:   o.Keywords,
		}))
	}
	return results, nil
}

// OutputPaths lists the destinations of the jobs that succeeded, in job order.
func OutputPaths(results []Result) []string {
	var paths []string
	for _, r := range results {
		if r.Err == nil {
			paths = append(paths, r.OutputPath)
		}
	}
	return paths
}
