// Package parser implements a recursive-descent reader for literal data:
// nil, booleans, integers, characters, strings, keywords, lists, vectors,
// maps and sets.
package parser

import (
	"bytes"
	"io"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/lexer"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is not
// set.
const DefaultMaxDepth = 512

// Options configures a Parser
type Options struct {
	// AutoCloseOnEOF closes collections that are still open when the input
	// ends instead of failing with ErrUnterminatedCollection.
	AutoCloseOnEOF bool

	// MaxDepth limits how deep collections can be nested.
	MaxDepth int
}

// readerFn reads one value, the character that selected it has already
// been consumed.
type readerFn func(p *Parser) (ast.Value, error)

var (
	macros   map[rune]readerFn
	dispatch map[rune]readerFn
)

func init() {
	macros = map[rune]readerFn{
		'"':  readString,
		'\\': readChar,
		'(':  readList,
		'[':  readVector,
		'{':  readMap,
		'#':  readDispatch,
	}

	dispatch = map[rune]readerFn{
		'{': readSet,
	}
}

// Parser reads values from a character source. A Parser is not safe for
// concurrent use.
type Parser struct {
	src  *lexer.Source
	opts Options

	depth int
}

// New creates a Parser that reads from r
func New(r io.Reader) *Parser {
	return NewFromSource(lexer.NewSource(r))
}

// NewFromSource creates a Parser that reads from a source owned by the
// caller.
func NewFromSource(src *lexer.Source) *Parser {
	return &Parser{src: src}
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Read consumes exactly one value from the source and leaves it positioned
// right after that value.
func (p *Parser) Read() (ast.Value, error) {
	p.depth = 0
	return p.read()
}

// Read consumes one value from src using the default options.
func Read(src *lexer.Source) (ast.Value, error) {
	return NewFromSource(src).Read()
}

// Parse reads the first value in the given input.
func Parse(in []byte) (ast.Value, error) {
	return New(bytes.NewReader(in)).Read()
}

func (p *Parser) read() (ast.Value, error) {
	r, err := p.skipWhitespace()
	if err == io.EOF {
		return ast.Nil, p.fail(ErrUnexpectedEOF, "")
	}
	if err != nil {
		return ast.Nil, p.fail(err, "")
	}

	if lexer.IsDigit(r) {
		return readNumber(p, r)
	}
	if fn, ok := macros[r]; ok {
		return fn(p)
	}
	return readToken(p, r)
}

// skipWhitespace consumes whitespace and returns the first significant
// character.
func (p *Parser) skipWhitespace() (rune, error) {
	for {
		r, err := p.src.Next()
		if err != nil {
			return rune(0), err
		}
		if !lexer.IsWhitespace(r) {
			return r, nil
		}
	}
}

func (p *Parser) maxDepth() int {
	if p.opts.MaxDepth > 0 {
		return p.opts.MaxDepth
	}
	return DefaultMaxDepth
}

func (p *Parser) fail(err error, text string) error {
	return &Error{
		Err:  err,
		Pos:  p.src.Pos(),
		Text: text,
	}
}
