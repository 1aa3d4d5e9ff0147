package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/lexer"
)

// readNumber reads a non-negative base-10 integer starting at first. The
// first non-digit character is pushed back.
func readNumber(p *Parser, first rune) (ast.Value, error) {
	var sb strings.Builder
	sb.WriteRune(first)

	for {
		r, err := p.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ast.Nil, p.fail(err, "")
		}
		if !lexer.IsDigit(r) {
			p.src.Unread(r)
			break
		}
		sb.WriteRune(r)
	}

	i64, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ast.Nil, p.fail(ErrNumberOverflow, sb.String())
		}
		return ast.Nil, p.fail(err, sb.String())
	}

	return ast.NewInt(i64), nil
}

// readString reads characters verbatim up to the closing quote.
func readString(p *Parser) (ast.Value, error) {
	var sb strings.Builder

	for {
		r, err := p.src.Next()
		if err == io.EOF {
			return ast.Nil, p.fail(ErrUnterminatedString, sb.String())
		}
		if err != nil {
			return ast.Nil, p.fail(err, "")
		}
		if r == '"' {
			break
		}
		sb.WriteRune(r)
	}

	return ast.NewString(sb.String()), nil
}

func readChar(p *Parser) (ast.Value, error) {
	r, err := p.src.Next()
	if err == io.EOF {
		return ast.Nil, p.fail(ErrUnexpectedEOF, "")
	}
	if err != nil {
		return ast.Nil, p.fail(err, "")
	}
	return ast.NewChar(r), nil
}

// readToken reads a bare word starting at first. The token ends at
// whitespace, at the end of the input or before a terminating character,
// whitespace and terminators are pushed back.
func readToken(p *Parser, first rune) (ast.Value, error) {
	var sb strings.Builder
	sb.WriteRune(first)

	for {
		r, err := p.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ast.Nil, p.fail(err, "")
		}
		if lexer.IsWhitespace(r) || lexer.IsTerminator(r) {
			p.src.Unread(r)
			break
		}
		sb.WriteRune(r)
	}

	return interpretToken(p, sb.String())
}

func interpretToken(p *Parser, text string) (ast.Value, error) {
	switch text {
	case "nil":
		return ast.Nil, nil
	case "true":
		return ast.True, nil
	case "false":
		return ast.False, nil
	}

	if name, ok := keywordName(text); ok {
		return ast.NewKeyword(name), nil
	}

	return ast.Nil, p.fail(ErrUnknownToken, text)
}

// keywordName returns the name of a keyword token: a colon followed by one
// or more word characters.
func keywordName(text string) (string, bool) {
	if len(text) < 2 || text[0] != ':' {
		return "", false
	}
	name := text[1:]
	for _, r := range name {
		if !lexer.IsWord(r) {
			return "", false
		}
	}
	return name, true
}
