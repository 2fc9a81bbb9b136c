// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output encodes a level set document for standard output.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/levelconv/pkg/types"
)

// Write encodes set to w in the format selected by cfg. JSON is written on a
// single line unless cfg.Indent is set; HTML characters are left unescaped.
func Write(w io.Writer, set types.LevelSet, cfg types.ConvertConfig) error {
	if set.Levels == nil {
		set.Levels = []types.Level{}
	}

	switch cfg.Format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if cfg.Indent != "" {
			enc.SetIndent("", cfg.Indent)
		}
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", cfg.Format)
	}
}

// ParseFormat validates a format name from a flag or config file.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.OutputJSON, types.OutputYAML:
		return f, nil
	case "":
		return types.OutputJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use json or yaml", s)
	}
}
