package edn

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/edn/ast"
	"github.com/xiam/edn/parser"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`"a string"`, `"a string"`},
		{`15 `, `15`},
		{`:keyword`, `:keyword`},
		{`nil`, `nil`},
		{`true`, `true`},
		{`false`, `false`},
		{`[14 15]`, `[14 15]`},
		{`(14 15)`, `(14 15)`},
		{`[14 [15]]`, `[14 [15]]`},
		{`{:a 1}`, `{:a 1}`},
		{`{:a {:b 1}}`, `{:a {:b 1}}`},
		{`#{1 2 3 #{4}}`, `#{1 2 3 #{4}}`},
		{`1 2`, `1`},
	}

	for i := range testCases {
		v, err := Parse([]byte(testCases[i].In))
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, v.String())
	}
}

func TestParseAll(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{``, []string{}},
		{"  \n\t", []string{}},
		{`1`, []string{`1`}},
		{`1 2 3`, []string{`1`, `2`, `3`}},
		{"[1 2]\n{:a 1}\n#{:b}\n", []string{`[1 2]`, `{:a 1}`, `#{:b}`}},
		{`"a""b"\c(nil)`, []string{`"a"`, `"b"`, `\c`, `(nil)`}},
	}

	for i := range testCases {
		values, err := ParseAll([]byte(testCases[i].In))
		require.NoError(t, err)

		out := []string{}
		for _, v := range values {
			out = append(out, v.String())
		}
		assert.Equal(t, testCases[i].Out, out)
	}
}

func TestParseAllError(t *testing.T) {
	values, err := ParseAll([]byte(`1 2 {:a}`))
	assert.Nil(t, values)
	assert.True(t, errors.Is(err, parser.ErrMalformedMap))
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("{:a 1}\n[1 2 3]\n"))

	v, err := r.Read()
	require.NoError(t, err)
	assert.True(t, ast.Equal(ast.NewMap(ast.Entry{Key: ast.NewKeyword("a"), Value: ast.NewInt(1)}), v))

	v, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader(`[1 [2`))
	_, err := r.Read()
	assert.True(t, errors.Is(err, parser.ErrUnterminatedCollection))

	r = NewReader(strings.NewReader(`[1 [2`))
	r.SetOptions(parser.Options{AutoCloseOnEOF: true})

	values, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, `[1 [2]]`, values[0].String())
}
