// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"csv2fasta-core/resolve"
)

// Config tunes column detection and file discovery without a rebuild. It is
// read only when the user passes --config; there is no implicit config path
// and no environment lookup.
type Config struct {
	SequenceKeywords []string `toml:"sequence_keywords"`
	IDKeywords       []string `toml:"id_keywords"`
	TableExtension   string   `toml:"table_extension"`
	OutputExtension  string   `toml:"output_extension"`
}

const (
	defaultTableExtension  = ".csv"
	defaultOutputExtension = ".fasta"
)

// Default returns the built-in detection settings.
func Default() Config {
	kw := resolve.DefaultKeywords()
	return Config{
		SequenceKeywords: kw.Sequence,
		IDKeywords:       kw.ID,
		TableExtension:   defaultTableExtension,
		OutputExtension:  defaultOutputExtension,
	}
}

// Load reads a TOML tuning file layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the converter cannot work with.
func (c Config) Validate() error {
	if len(c.SequenceKeywords) == 0 {
		return errors.New("sequence_keywords must not be empty")
	}
	if len(c.IDKeywords) == 0 {
		return errors.New("id_keywords must not be empty")
	}
	if !strings.HasPrefix(c.TableExtension, ".") {
		return fmt.Errorf("table_extension %q must start with a dot", c.TableExtension)
	}
	if !strings.HasPrefix(c.OutputExtension, ".") {
		return fmt.Errorf("output_extension %q must start with a dot", c.OutputExtension)
	}
	return nil
}

// Keywords exposes the configured lists as resolver keyword sets.
func (c Config) Keywords() resolve.Keywords {
	return resolve.Keywords{Sequence: c.SequenceKeywords, ID: c.IDKeywords}
}
