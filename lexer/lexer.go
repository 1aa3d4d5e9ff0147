// Package lexer provides the character source the reader consumes: a rune
// stream with a single slot of pushback and position tracking.
package lexer

import (
	"bufio"
	"io"
)

type cursor struct {
	line    int
	col     int
	newline bool
}

// Source represents a stream of characters with one character of
// lookahead.
type Source struct {
	in io.RuneReader

	pending    rune
	hasPending bool

	curr cursor
	prev cursor
}

// NewSource initializes a Source that reads characters from r. If r
// already implements io.RuneReader it is used as is, so no more than what
// is asked for is consumed from it.
func NewSource(r io.Reader) *Source {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Source{
		in:   rr,
		curr: cursor{line: 1},
	}
}

// Next consumes and returns the next character. It returns io.EOF when the
// input is exhausted.
func (s *Source) Next() (rune, error) {
	var r rune

	if s.hasPending {
		r, s.hasPending = s.pending, false
	} else {
		var err error
		r, _, err = s.in.ReadRune()
		if err != nil {
			return rune(0), err
		}
	}

	s.prev = s.curr
	if s.curr.newline {
		s.curr.line++
		s.curr.col = 0
	}
	s.curr.col++
	s.curr.newline = r == '\n'

	return r, nil
}

// Unread returns r to the front of the stream, the next call to Next will
// return it. Only one character can be pushed back between calls to Next.
func (s *Source) Unread(r rune) {
	if s.hasPending {
		panic("lexer: Unread called twice without Next")
	}
	s.pending, s.hasPending = r, true
	s.curr = s.prev
}

// Pos returns the position of the last consumed character.
func (s *Source) Pos() Position {
	return Position{Line: s.curr.line, Col: s.curr.col}
}
