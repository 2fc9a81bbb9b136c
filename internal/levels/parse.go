// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package levels parses plain-text Sokoban level collections.
//
// The input format is line oriented:
//
//	Level 1
//	'Optional Title Enclosed by Single Quotes'
//	#####
//	#@$.#
//	#####
//
//	Level 2
//	...
//
// Each level starts with a header line containing "level N" (any case,
// anywhere in the line), may be followed by a single-quoted title line, and
// continues with board rows up to the next blank line or end of input.
package levels

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pdiddy/levelconv/pkg/types"
)

var (
	// headerPattern is deliberately unanchored: text before or after
	// "level N" is tolerated.
	headerPattern = regexp.MustCompile(`(?i)level \d+`)
	titlePattern  = regexp.MustCompile(`^'([^']+)'$`)
	boardPattern  = regexp.MustCompile(`^[# @$*.+]+$`)
)

// Warning records a board row that contains characters outside the Sokoban
// set. The row is still part of the level.
type Warning struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Parser turns input lines into levels. Warnings go to the logger and are
// also kept for inspection. A Parser is not safe for concurrent use.
type Parser struct {
	logger   *slog.Logger
	warnings []Warning
}

// NewParser returns a Parser that reports warnings on logger. A nil logger
// discards them.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{logger: logger}
}

// Warnings returns the warnings raised so far, in line order.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// ParseLevel parses the level whose header is lines[start]. It returns the
// number of lines consumed (header, optional title and board rows) and the
// level. A header mismatch or a missing board is returned as a *LineError.
func (p *Parser) ParseLevel(lines []string, start int) (int, types.Level, error) {
	if start < 0 || start >= len(lines) {
		return 0, types.Level{}, &LineError{Line: start, Err: ErrOutOfRange}
	}

	idx := start
	if !headerPattern.MatchString(lines[idx]) {
		return 0, types.Level{}, &LineError{Line: idx, Text: lines[idx], Err: ErrHeaderMismatch}
	}
	idx++

	var title string
	if idx < len(lines) {
		if m := titlePattern.FindStringSubmatch(lines[idx]); m != nil {
			title = m[1]
			idx++
		}
	}

	if idx >= len(lines) {
		return 0, types.Level{}, &LineError{Line: idx, Err: ErrEmptyBoard}
	}
	if isBlank(lines[idx]) {
		return 0, types.Level{}, &LineError{Line: idx, Text: lines[idx], Err: ErrEmptyBoard}
	}

	var rows []string
	for idx < len(lines) && !isBlank(lines[idx]) {
		rows = append(rows, lines[idx])
		if !boardPattern.MatchString(lines[idx]) {
			p.warn(idx, lines[idx])
		}
		idx++
	}

	level := types.Level{Title: title, Contents: strings.Join(rows, "\n")}
	return idx - start, level, nil
}

// Parse runs ParseLevel from the first line to the end of input, skipping
// blank lines between levels. Any fatal error aborts the whole parse and no
// levels are returned.
func (p *Parser) Parse(lines []string) ([]types.Level, error) {
	levels := []types.Level{}
	idx := 0
	for idx < len(lines) {
		n, level, err := p.ParseLevel(lines, idx)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
		idx += n
		for idx < len(lines) && isBlank(lines[idx]) {
			idx++
		}
	}
	p.logger.Debug("parsed level set", "levels", len(levels), "warnings", len(p.warnings))
	return levels, nil
}

func (p *Parser) warn(line int, text string) {
	p.warnings = append(p.warnings, Warning{Line: line, Text: text})
	p.logger.Warn("non-Sokoban character found", "line", line, "contents", text)
}

// SplitLines splits text on "\n" only. Carriage returns stay part of the
// line, and a trailing newline yields a final empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// isBlank reports whether line holds nothing but whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
