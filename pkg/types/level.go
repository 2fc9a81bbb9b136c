// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Level is one puzzle board from a level set. A level without a title
// encodes as the bare grid string; a titled level encodes as an object with
// "title" and "contents" keys.
type Level struct {
	// Title is the text of the optional quoted title line. Empty means the
	// level had no title line.
	Title string `json:"title" yaml:"title"`

	// Contents is the board: the level's rows joined by "\n".
	Contents string `json:"contents" yaml:"contents"`
}

// titledLevel is the object form of Level, used to avoid recursing into the
// custom codecs.
type titledLevel struct {
	Title    string `json:"title" yaml:"title"`
	Contents string `json:"contents" yaml:"contents"`
}

// HasTitle reports whether the level carries a title.
func (l Level) HasTitle() bool {
	return l.Title != ""
}

// Rows returns the board rows in order.
func (l Level) Rows() []string {
	return strings.Split(l.Contents, "\n")
}

// MarshalJSON encodes an untitled level as a JSON string and a titled level
// as a {"title", "contents"} object.
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.HasTitle() {
		return marshalNoEscape(l.Contents)
	}
	return marshalNoEscape(titledLevel{Title: l.Title, Contents: l.Contents})
}

// UnmarshalJSON accepts either encoding produced by MarshalJSON.
func (l *Level) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var grid string
		if err := json.Unmarshal(data, &grid); err != nil {
			return err
		}
		*l = Level{Contents: grid}
		return nil
	}
	var t titledLevel
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("level must be a string or a {title, contents} object: %w", err)
	}
	*l = Level{Title: t.Title, Contents: t.Contents}
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (l Level) MarshalYAML() (any, error) {
	if !l.HasTitle() {
		return l.Contents, nil
	}
	return titledLevel{Title: l.Title, Contents: l.Contents}, nil
}

// UnmarshalYAML accepts a scalar grid or a title/contents mapping.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var grid string
		if err := node.Decode(&grid); err != nil {
			return err
		}
		*l = Level{Contents: grid}
		return nil
	case yaml.MappingNode:
		var t titledLevel
		if err := node.Decode(&t); err != nil {
			return err
		}
		*l = Level{Title: t.Title, Contents: t.Contents}
		return nil
	default:
		return fmt.Errorf("line %d: level must be a string or a {title, contents} mapping", node.Line)
	}
}

// LevelSet is the output document of one conversion run. Author and Title
// are supplied by the caller, never derived from the input text.
type LevelSet struct {
	Author string  `json:"author" yaml:"author"`
	Title  string  `json:"title" yaml:"title"`
	Levels []Level `json:"levels" yaml:"levels"`
}

// marshalNoEscape encodes v like json.Marshal but leaves <, > and &
// unescaped, the way JavaScript's JSON.stringify does.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
