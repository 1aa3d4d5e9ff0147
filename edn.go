// Package edn reads literal data written in a Lisp-like syntax: nil,
// booleans, integers, characters, strings, keywords, lists, vectors, maps
// and sets.
//
//	[14 (15 16) {:a "b"} #{\c nil true}]
//
// The values are described in package ast, the reader itself lives in
// package parser.
package edn

import (
	"bytes"
	"io"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/lexer"
	"github.com/xiam/edn/parser"
)

// Reader reads successive values from a stream.
type Reader struct {
	src *lexer.Source
	p   *parser.Parser
}

// NewReader creates a Reader that reads from r
func NewReader(r io.Reader) *Reader {
	src := lexer.NewSource(r)
	return &Reader{
		src: src,
		p:   parser.NewFromSource(src),
	}
}

// SetOptions configures the underlying parser
func (r *Reader) SetOptions(opts parser.Options) {
	r.p.SetOptions(opts)
}

// Read returns the next value in the stream, or io.EOF once only
// whitespace is left.
func (r *Reader) Read() (ast.Value, error) {
	for {
		c, err := r.src.Next()
		if err != nil {
			return ast.Nil, err
		}
		if !lexer.IsWhitespace(c) {
			r.src.Unread(c)
			break
		}
	}
	return r.p.Read()
}

// ReadAll reads values until the end of the stream
func (r *Reader) ReadAll() ([]ast.Value, error) {
	values := []ast.Value{}
	for {
		v, err := r.Read()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// Parse reads the first value in the given input
func Parse(in []byte) (ast.Value, error) {
	return parser.Parse(in)
}

// ParseAll reads every value in the given input
func ParseAll(in []byte) ([]ast.Value, error) {
	return NewReader(bytes.NewReader(in)).ReadAll()
}
