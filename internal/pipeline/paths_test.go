// internal/pipeline/paths_test.go
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOutputName(t *testing.T) {
	assert.Equal(t, "sample.fasta", DeriveOutputName("sample.csv", ".fasta"))
	assert.Equal(t, "Sample.fasta", DeriveOutputName("Sample.CSV", ".fasta"))
	assert.Equal(t, "noext.fasta", DeriveOutputName("noext", ".fasta"))
	assert.Equal(t, "a.b.fasta", DeriveOutputName("a.b.csv", ".fasta"))
}

func TestDeriveOutputPathKeepsDirectory(t *testing.T) {
	assert.Equal(t, "data/run1/sample.fasta", DeriveOutputPath("data/run1/sample.csv", ".fasta"))
}
