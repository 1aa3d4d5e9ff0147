package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(in ...int64) []Value {
	values := make([]Value, 0, len(in))
	for _, i := range in {
		values = append(values, NewInt(i))
	}
	return values
}

func TestValueTypes(t *testing.T) {
	testCases := []struct {
		In         Value
		Type       Type
		Scalar     bool
		Sequential bool
	}{
		{Value{}, TypeNil, true, false},
		{Nil, TypeNil, true, false},
		{True, TypeBool, true, false},
		{NewInt(15), TypeInt, true, false},
		{NewChar('c'), TypeChar, true, false},
		{NewString("a string"), TypeString, true, false},
		{NewKeyword("keyword"), TypeKeyword, true, false},
		{NewList(), TypeList, false, true},
		{NewVector(), TypeVector, false, true},
		{NewMap(), TypeMap, false, false},
		{NewSet(), TypeSet, false, false},
	}

	for i := range testCases {
		v := testCases[i].In
		assert.Equal(t, testCases[i].Type, v.Type())
		assert.Equal(t, testCases[i].Scalar, v.IsScalar())
		assert.Equal(t, !testCases[i].Scalar, v.IsCollection())
		assert.Equal(t, testCases[i].Sequential, v.IsSequential())
	}

	assert.Equal(t, "keyword", TypeKeyword.String())
	assert.Equal(t, "", Type(0).String())
}

func TestValueString(t *testing.T) {
	testCases := []struct {
		In  Value
		Out string
	}{
		{Nil, `nil`},
		{NewBool(false), `false`},
		{NewInt(15), `15`},
		{NewChar('a'), `\a`},
		{NewString("a string"), `"a string"`},
		{NewKeyword("a"), `:a`},
		{NewList(ints(14, 15)...), `(14 15)`},
		{NewVector(NewInt(14), NewVector(NewInt(15))), `[14 [15]]`},
		{NewMap(Entry{NewKeyword("a"), NewInt(1)}), `{:a 1}`},
		{NewSet(ints(1, 2, 2, 3)...), `#{1 2 3}`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestValueEqual(t *testing.T) {
	testCases := []struct {
		A     Value
		B     Value
		Equal bool
	}{
		{Nil, Value{}, true},
		{Nil, False, false},
		{NewInt(1), NewInt(1), true},
		{NewInt(1), NewString("1"), false},
		{NewKeyword("a"), NewString("a"), false},
		{NewChar('a'), NewString("a"), false},
		{NewList(ints(14, 15)...), NewVector(ints(14, 15)...), true},
		{NewList(ints(14, 15)...), NewVector(ints(15, 14)...), false},
		{NewVector(ints(1)...), NewVector(NewVector(ints(1)...)), false},
		{NewSet(ints(1, 2, 3, 4)...), NewSet(ints(4, 3, 2, 1)...), true},
		{NewSet(ints(1, 2)...), NewSet(ints(1, 2, 3)...), false},
		{
			NewMap(Entry{NewKeyword("a"), NewInt(1)}, Entry{NewKeyword("b"), NewInt(2)}),
			NewMap(Entry{NewKeyword("b"), NewInt(2)}, Entry{NewKeyword("a"), NewInt(1)}),
			true,
		},
		{
			NewMap(Entry{NewKeyword("a"), NewInt(1)}),
			NewMap(Entry{NewKeyword("a"), NewInt(2)}),
			false,
		},
		{
			NewVector(NewString("a b")),
			NewVector(NewString("a"), NewString("b")),
			false,
		},
		{
			NewVector(NewKeyword("a :b")),
			NewVector(NewKeyword("a"), NewKeyword("b")),
			false,
		},
	}

	for i := range testCases {
		tc := testCases[i]
		assert.Equal(t, tc.Equal, Equal(tc.A, tc.B), "%v = %v", tc.A, tc.B)
		assert.Equal(t, tc.Equal, tc.B.Equal(tc.A), "%v = %v", tc.B, tc.A)
	}
}

func TestMapLastWriteWins(t *testing.T) {
	m := NewMap(
		Entry{NewKeyword("a"), NewInt(1)},
		Entry{NewKeyword("b"), NewInt(2)},
		Entry{NewKeyword("a"), NewInt(3)},
	)

	assert.Equal(t, 2, m.Len())

	v, ok := m.Get(NewKeyword("a"))
	assert.True(t, ok)
	assert.Equal(t, int64(3), v.Int())

	_, ok = m.Get(NewKeyword("c"))
	assert.False(t, ok)

	entries := m.Entries()
	assert.Equal(t, "a", entries[0].Key.Keyword())
	assert.Equal(t, "b", entries[1].Key.Keyword())
}

func TestMapStructuralKeys(t *testing.T) {
	m := NewMap(Entry{NewVector(ints(1, 2)...), NewString("pair")})

	v, ok := m.Get(NewList(ints(1, 2)...))
	assert.True(t, ok)
	assert.Equal(t, "pair", v.Str())
}

func TestSetMembership(t *testing.T) {
	s := NewSet(NewInt(1), NewInt(2), NewInt(3), NewSet(NewInt(4)), NewInt(1))

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains(NewInt(3)))
	assert.True(t, s.Contains(NewSet(NewInt(4))))
	assert.False(t, s.Contains(NewInt(4)))
}

func TestValueImmutable(t *testing.T) {
	in := ints(1, 2, 3)
	v := NewVector(in...)

	in[0] = NewInt(99)
	assert.Equal(t, int64(1), v.Items()[0].Int())

	items := v.Items()
	items[1] = NewInt(99)
	assert.Equal(t, int64(2), v.Items()[1].Int())

	m := NewMap(Entry{NewKeyword("a"), NewInt(1)})
	entries := m.Entries()
	entries[0].Value = NewInt(99)

	got, _ := m.Get(NewKeyword("a"))
	assert.Equal(t, int64(1), got.Int())
}

func TestAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { NewString("a").Keyword() })
	assert.Panics(t, func() { NewKeyword("a").Str() })
	assert.Panics(t, func() { NewInt(1).Len() })
	assert.Panics(t, func() { NewMap().Items() })
}

func TestPrint(t *testing.T) {
	v := NewMap(
		Entry{NewKeyword("a"), NewVector(NewInt(14), NewSet(NewChar('x')))},
	)

	var buf bytes.Buffer
	Print(&buf, v)

	expected := "(map)[1]\n" +
		"    (keyword): :a\n" +
		"        (vector)[2]\n" +
		"            (int): 14\n" +
		"            (set)[1]\n" +
		"                (char): \\x\n"
	assert.Equal(t, expected, buf.String())
}
