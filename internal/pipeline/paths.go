// internal/pipeline/paths.go
package pipeline

import (
	"path/filepath"
	"strings"
)

// DeriveOutputName swaps a file name's extension for outExt, keeping the stem.
func DeriveOutputName(name, outExt string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + outExt
}

// DeriveOutputPath is the default single-file destination: the input path
// with its extension replaced.
func DeriveOutputPath(input, outExt string) string {
	return DeriveOutputName(input, outExt)
}
