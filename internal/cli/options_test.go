// internal/cli/options_test.go
package cli

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var got Options
	cmd := NewRootCommand(func(_ *cobra.Command, o Options) error {
		got = o
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestParseDefaults(t *testing.T) {
	o, err := parse(t, "in.csv")
	require.NoError(t, err)
	assert.Equal(t, "in.csv", o.Input)
	assert.Empty(t, o.Output)
	assert.Empty(t, o.SeqColumn)
	assert.Empty(t, o.IDColumn)
	assert.False(t, o.Summary)
	assert.False(t, o.Quiet)
}

func TestParseLongFlags(t *testing.T) {
	o, err := parse(t,
		"tables/",
		"--output", "out/",
		"--sequence-column", "protein_sequence",
		"--id-column", "accession",
		"--summary", "--quiet",
	)
	require.NoError(t, err)
	assert.Equal(t, "tables/", o.Input)
	assert.Equal(t, "out/", o.Output)
	assert.Equal(t, "protein_sequence", o.SeqColumn)
	assert.Equal(t, "accession", o.IDColumn)
	assert.True(t, o.Summary)
	assert.True(t, o.Quiet)
}

func TestParseShortFlags(t *testing.T) {
	o, err := parse(t, "in.csv", "-o", "out.fasta", "-s", "seq", "-i", "id", "-q")
	require.NoError(t, err)
	assert.Equal(t, "out.fasta", o.Output)
	assert.Equal(t, "seq", o.SeqColumn)
	assert.Equal(t, "id", o.IDColumn)
	assert.True(t, o.Quiet)
}

func TestParseConfigFlag(t *testing.T) {
	o, err := parse(t, "in.csv", "-c", "tuning.toml")
	require.NoError(t, err)
	assert.Equal(t, "tuning.toml", o.ConfigPath)
}

func TestParseRequiresInput(t *testing.T) {
	_, err := parse(t)
	require.Error(t, err)
}

func TestParseRejectsExtraPositionals(t *testing.T) {
	_, err := parse(t, "a.csv", "b.csv")
	require.Error(t, err)
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := parse(t, "in.csv", "--bogus")
	require.Error(t, err)
}
