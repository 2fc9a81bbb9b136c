// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package levels

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderMismatch means the line where a level should start does not
	// contain "level N".
	ErrHeaderMismatch = errors.New("expected 'level N'")

	// ErrEmptyBoard means a header (and optional title) is followed by a
	// blank line or end of input instead of at least one board row.
	ErrEmptyBoard = errors.New("level has no board rows")

	// ErrUnexpectedCharacter is reported for board rows containing
	// characters outside the Sokoban set. It is only returned in strict mode.
	ErrUnexpectedCharacter = errors.New("non-Sokoban character found")

	// ErrOutOfRange means ParseLevel was called with a start index outside
	// the input.
	ErrOutOfRange = errors.New("start index out of range")
)

// LineError ties a parse failure to the 0-based index and text of the line
// that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v, found: %s", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
