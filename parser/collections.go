package parser

import (
	"io"

	"github.com/xiam/edn/ast"
)

// readDelimited reads values up to the closing delimiter. The opening
// character has already been consumed.
func readDelimited(p *Parser, delim rune) ([]ast.Value, error) {
	if p.depth >= p.maxDepth() {
		return nil, p.fail(ErrMaxDepthExceeded, "")
	}
	p.depth++
	defer func() {
		p.depth--
	}()

	items := []ast.Value{}
	for {
		r, err := p.skipWhitespace()
		if err == io.EOF {
			if p.opts.AutoCloseOnEOF {
				return items, nil
			}
			return nil, p.fail(ErrUnterminatedCollection, string(delim))
		}
		if err != nil {
			return nil, p.fail(err, "")
		}

		if r == delim {
			return items, nil
		}

		var v ast.Value
		if fn, ok := macros[r]; ok {
			v, err = fn(p)
		} else {
			p.src.Unread(r)
			v, err = p.read()
		}
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}
}

func readList(p *Parser) (ast.Value, error) {
	items, err := readDelimited(p, ')')
	if err != nil {
		return ast.Nil, err
	}
	return ast.NewList(items...), nil
}

func readVector(p *Parser) (ast.Value, error) {
	items, err := readDelimited(p, ']')
	if err != nil {
		return ast.Nil, err
	}
	return ast.NewVector(items...), nil
}

func readMap(p *Parser) (ast.Value, error) {
	items, err := readDelimited(p, '}')
	if err != nil {
		return ast.Nil, err
	}
	return buildMap(p, items)
}

// buildMap pairs items in encounter order, later keys overwrite earlier
// ones.
func buildMap(p *Parser, items []ast.Value) (ast.Value, error) {
	if len(items)%2 != 0 {
		return ast.Nil, p.fail(ErrMalformedMap, "")
	}

	entries := make([]ast.Entry, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		entries = append(entries, ast.Entry{Key: items[i], Value: items[i+1]})
	}

	return ast.NewMap(entries...), nil
}

// readDispatch reads the character after '#' and hands over to the
// matching dispatch reader.
func readDispatch(p *Parser) (ast.Value, error) {
	r, err := p.src.Next()
	if err == io.EOF {
		return ast.Nil, p.fail(ErrUnexpectedEOF, "")
	}
	if err != nil {
		return ast.Nil, p.fail(err, "")
	}

	fn, ok := dispatch[r]
	if !ok {
		return ast.Nil, p.fail(ErrUnknownDispatchMacro, "#"+string(r))
	}
	return fn(p)
}

func readSet(p *Parser) (ast.Value, error) {
	items, err := readDelimited(p, '}')
	if err != nil {
		return ast.Nil, err
	}
	return ast.NewSet(items...), nil
}
