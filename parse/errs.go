package parse

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax    = errors.New("syntax error")
	ErrNoGroup   = fmt.Errorf("%w: key outside of a group", ErrSyntax)
	ErrBadHeader = fmt.Errorf("%w: malformed group header", ErrSyntax)
	ErrBadKey    = fmt.Errorf("%w: malformed key", ErrSyntax)
	ErrNoValue   = fmt.Errorf("%w: key without values", ErrSyntax)

	ErrJSON = errors.New("invalid json store")
)

// ParseError reports the line at which parsing stopped. Line and Col
// are 1-based, Offset is the byte offset in the parsed buffer.
type ParseError struct {
	Filename  string
	Line, Col int
	Offset    int
	Text      string
	Err       error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Line, e.Col)
	if e.Filename != "" {
		loc = e.Filename + ":" + loc
	}
	return fmt.Sprintf("%s: %v: %q", loc, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
