package notation

import (
	"errors"
	"fmt"
)

var (
	ErrBadSquare  = errors.New("bad square")
	ErrBadCommand = errors.New("expected a pair of coordinates")
	ErrBadPattern = errors.New("bad board pattern")
	ErrBadFEN     = errors.New("invalid FEN string")
)

// ParseError carries the line of a board pattern that could not be read.
type ParseError struct {
	Err  error  // The underlying error
	Line int    // Line number (1-based), 0 when the whole input is at fault
	Text string // Offending text, if any
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
