// Package ast defines the values produced by the reader. Values are
// immutable once constructed: collection accessors hand out copies.
package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value represents any value the reader can produce. The zero Value is nil.
type Value struct {
	t Type
	v interface{}

	// canonical key, precomputed for collections
	k string
}

// Entry is a key/value pair of a map
type Entry struct {
	Key   Value
	Value Value
}

type mapping struct {
	entries []Entry
	index   map[string]int
}

type set struct {
	items []Value
	index map[string]struct{}
}

// Singletons for nil and the two booleans
var (
	Nil   = Value{t: TypeNil}
	True  = Value{t: TypeBool, v: true}
	False = Value{t: TypeBool, v: false}
)

// NewBool returns True or False
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// NewInt creates an integer value
func NewInt(i int64) Value {
	return Value{t: TypeInt, v: i}
}

// NewChar creates a character value
func NewChar(r rune) Value {
	return Value{t: TypeChar, v: r}
}

// NewString creates a string value
func NewString(s string) Value {
	return Value{t: TypeString, v: s}
}

// NewKeyword creates a keyword value, name is given without the leading
// colon.
func NewKeyword(name string) Value {
	return Value{t: TypeKeyword, v: name}
}

// NewList creates a list from the given items
func NewList(items ...Value) Value {
	return newSequence(TypeList, items)
}

// NewVector creates a vector from the given items
func NewVector(items ...Value) Value {
	return newSequence(TypeVector, items)
}

func newSequence(t Type, items []Value) Value {
	list := make([]Value, len(items))
	copy(list, items)

	keys := make([]string, 0, len(list))
	for i := range list {
		keys = append(keys, list[i].key())
	}

	return Value{
		t: t,
		v: list,
		k: "(" + strings.Join(keys, " ") + ")",
	}
}

// NewMap creates a map from the given entries. When a key appears more than
// once the last entry wins.
func NewMap(entries ...Entry) Value {
	m := &mapping{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		k := e.Key.key()
		if i, ok := m.index[k]; ok {
			m.entries[i].Value = e.Value
			continue
		}
		m.index[k] = len(m.entries)
		m.entries = append(m.entries, e)
	}

	pairs := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		pairs = append(pairs, e.Key.key()+" "+e.Value.key())
	}
	sort.Strings(pairs)

	return Value{
		t: TypeMap,
		v: m,
		k: "{" + strings.Join(pairs, " ") + "}",
	}
}

// NewSet creates a set from the given items, dropping duplicates.
func NewSet(items ...Value) Value {
	s := &set{
		items: make([]Value, 0, len(items)),
		index: make(map[string]struct{}, len(items)),
	}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		k := item.key()
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = struct{}{}
		s.items = append(s.items, item)
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Value{
		t: TypeSet,
		v: s,
		k: "#{" + strings.Join(keys, " ") + "}",
	}
}

// Type returns the type of the value
func (v Value) Type() Type {
	if v.t == 0 {
		return TypeNil
	}
	return v.t
}

// IsNil returns true if the value is nil
func (v Value) IsNil() bool {
	return v.Type() == TypeNil
}

// IsScalar returns true for nil, booleans, integers, characters, strings
// and keywords.
func (v Value) IsScalar() bool {
	return v.Type()&typeScalar > 0
}

// IsCollection returns true for lists, vectors, maps and sets
func (v Value) IsCollection() bool {
	return v.Type()&typeCollection > 0
}

// IsSequential returns true for lists and vectors
func (v Value) IsSequential() bool {
	return v.Type()&typeSequential > 0
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Char() rune {
	return v.v.(rune)
}

// Str returns the contents of a string value
func (v Value) Str() string {
	if v.t != TypeString {
		panic(fmt.Sprintf("ast: Str called on %v value", v.Type()))
	}
	return v.v.(string)
}

// Keyword returns the name of a keyword value, without the colon
func (v Value) Keyword() string {
	if v.t != TypeKeyword {
		panic(fmt.Sprintf("ast: Keyword called on %v value", v.Type()))
	}
	return v.v.(string)
}

// Len returns the number of elements of a collection
func (v Value) Len() int {
	switch v.Type() {
	case TypeList, TypeVector:
		return len(v.v.([]Value))
	case TypeMap:
		return len(v.v.(*mapping).entries)
	case TypeSet:
		return len(v.v.(*set).items)
	}
	panic(fmt.Sprintf("ast: Len called on %v value", v.Type()))
}

// Items returns a copy of the elements of a list, vector or set. Sets
// return their elements in insertion order.
func (v Value) Items() []Value {
	var items []Value
	switch v.Type() {
	case TypeList, TypeVector:
		items = v.v.([]Value)
	case TypeSet:
		items = v.v.(*set).items
	default:
		panic(fmt.Sprintf("ast: Items called on %v value", v.Type()))
	}
	out := make([]Value, len(items))
	copy(out, items)
	return out
}

// Entries returns a copy of the entries of a map in insertion order
func (v Value) Entries() []Entry {
	m := v.v.(*mapping)
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Get looks up a key in a map
func (v Value) Get(key Value) (Value, bool) {
	m := v.v.(*mapping)
	if i, ok := m.index[key.key()]; ok {
		return m.entries[i].Value, true
	}
	return Nil, false
}

// Contains returns true if item is an element of a set
func (v Value) Contains(item Value) bool {
	_, ok := v.v.(*set).index[item.key()]
	return ok
}

// Equal compares two values structurally. Lists and vectors with equal
// elements are equal, maps and sets are compared regardless of order.
func (v Value) Equal(o Value) bool {
	return v.key() == o.key()
}

// Equal compares a and b structurally
func Equal(a, b Value) bool {
	return a.Equal(b)
}

// key returns a canonical, self-delimiting representation of the value,
// equal keys mean structurally equal values.
func (v Value) key() string {
	switch v.Type() {
	case TypeNil:
		return "nil"
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	case TypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case TypeChar:
		return `\` + strconv.QuoteRune(v.Char())
	case TypeString:
		return strconv.Quote(v.Str())
	case TypeKeyword:
		return ":" + strconv.Quote(v.Keyword())
	}
	return v.k
}

func (v Value) String() string {
	switch v.Type() {
	case TypeNil:
		return "nil"
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	case TypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case TypeChar:
		return `\` + string(v.Char())
	case TypeString:
		return fmt.Sprintf("%q", v.Str())
	case TypeKeyword:
		return ":" + v.Keyword()
	case TypeList:
		return "(" + joinValues(v.Items()) + ")"
	case TypeVector:
		return "[" + joinValues(v.Items()) + "]"
	case TypeSet:
		return "#{" + joinValues(v.Items()) + "}"
	case TypeMap:
		values := []Value{}
		for _, e := range v.Entries() {
			values = append(values, e.Key, e.Value)
		}
		return "{" + joinValues(values) + "}"
	}
	panic("unreachable")
}

func joinValues(values []Value) string {
	s := make([]string, 0, len(values))
	for i := range values {
		s = append(s, values[i].String())
	}
	return strings.Join(s, " ")
}
