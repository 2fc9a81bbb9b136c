// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the encoding of the emitted level set document.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// Format selects the output encoding: json (default) or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// Indent is the per-level JSON indent. Empty produces the compact
	// single-line document.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`

	// Strict turns non-Sokoban character warnings into a fatal error once
	// the whole file has been scanned.
	Strict bool `json:"strict" yaml:"strict"`

	// CatalogDir, when set, is the directory holding the SQLite catalog that
	// every successful conversion is recorded in.
	CatalogDir string `json:"catalog_dir,omitempty" yaml:"catalog_dir,omitempty"`
}
