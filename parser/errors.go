package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/edn/lexer"
)

var (
	ErrUnexpectedEOF          = errors.New("unexpected EOF")
	ErrUnterminatedString     = errors.New("unterminated string")
	ErrNumberOverflow         = errors.New("number overflows int64")
	ErrUnknownToken           = errors.New("unknown token")
	ErrUnknownDispatchMacro   = errors.New("unknown dispatch macro")
	ErrMalformedMap           = errors.New("map literal with an odd number of elements")
	ErrUnterminatedCollection = errors.New("unterminated collection")
	ErrMaxDepthExceeded       = errors.New("maximum nesting depth exceeded")
)

// Error is returned by every failed read. Err is one of the sentinel errors
// above, or the error returned by the underlying reader.
type Error struct {
	Err  error
	Pos  lexer.Position
	Text string
}

func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%v: %v %q", e.Pos, e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
