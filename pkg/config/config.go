package config

import (
	"fmt"
	"strings"
)

// ConflictPolicy decides what an import does when a livery conflicts with installed files
type ConflictPolicy string

const (
	ConflictAsk      ConflictPolicy = "ask"
	ConflictOverride ConflictPolicy = "override"
	ConflictSkip     ConflictPolicy = "skip"
)

// UnmarshalText accepts the policy names case-insensitively
func (p *ConflictPolicy) UnmarshalText(text []byte) error {
	switch v := ConflictPolicy(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ConflictAsk, ConflictOverride, ConflictSkip:
		*p = v
		return nil
	default:
		return fmt.Errorf("unknown conflict policy %q (want ask, override or skip)", string(text))
	}
}

// Output formats of the list command
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the complete tool configuration
type Config struct {
	Install InstallConfig `koanf:"install" toml:"install"`
	Import  ImportConfig  `koanf:"import" toml:"import"`
	Export  ExportConfig  `koanf:"export" toml:"export"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
}

type InstallConfig struct {
	Root string `koanf:"root" toml:"root"`
}

type ImportConfig struct {
	OnConflict ConflictPolicy `koanf:"on_conflict" toml:"on_conflict"`
}

type ExportConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

type OutputConfig struct {
	Format   string `koanf:"format" toml:"format"`
	Progress bool   `koanf:"progress" toml:"progress"`
}

type LoggingConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", c.Output.Format)
	}
	if c.Import.OnConflict == "" {
		return fmt.Errorf("import.on_conflict must be set")
	}
	return nil
}
