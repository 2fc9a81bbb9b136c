// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package levels

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pdiddy/levelconv/pkg/types"
)

// Options controls a conversion run.
type Options struct {
	// Logger receives non-Sokoban character warnings. Nil discards them.
	Logger *slog.Logger

	// Strict fails the conversion when any warning was raised.
	Strict bool
}

// Result is the outcome of a successful conversion.
type Result struct {
	Set      types.LevelSet
	Warnings []Warning
}

// Convert reads the whole level file from r and bundles the parsed levels
// with the caller-supplied author and title.
func Convert(r io.Reader, author, title string, opts Options) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading level file: %w", err)
	}

	p := NewParser(opts.Logger)
	lvls, err := p.Parse(SplitLines(string(data)))
	if err != nil {
		return Result{}, err
	}

	warnings := p.Warnings()
	if opts.Strict && len(warnings) > 0 {
		first := warnings[0]
		return Result{}, fmt.Errorf("%d board row(s) rejected in strict mode, first at %w",
			len(warnings), &LineError{Line: first.Line, Text: first.Text, Err: ErrUnexpectedCharacter})
	}

	return Result{
		Set:      types.LevelSet{Author: author, Title: title, Levels: lvls},
		Warnings: warnings,
	}, nil
}

// ConvertFile is Convert over the file at path.
func ConvertFile(path, author, title string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening level file: %w", err)
	}
	defer f.Close()

	res, err := Convert(f, author, title, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
