package lang

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of [Value].
type Kind int

const (
	// KindInt represents a signed 64-bit integer constant.
	KindInt Kind = iota

	// KindList represents an ordered sequence of values.
	KindList
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is the closed tagged variant for all constant values in the
// language. Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Int  int64    // payload for KindInt
	List []*Value // payload for KindList
}

// NewInt creates an integer [Value].
func NewInt(i int64) *Value {
	return &Value{Kind: KindInt, Int: i}
}

// NewList creates a list [Value] from the given elements.
// An empty argument list yields an empty (non-nil conceptually) list value.
func NewList(elems ...*Value) *Value {
	return &Value{Kind: KindList, List: elems}
}

// Clone returns a deep copy of the value.
// Symbol references resolve through Clone so a later redeclaration of the
// referenced name cannot mutate values captured by earlier declarations.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}

	if v.Kind == KindInt {
		return NewInt(v.Int)
	}

	elems := make([]*Value, len(v.List))
	for i, e := range v.List {
		elems[i] = e.Clone()
	}

	return NewList(elems...)
}

// Equal reports whether two values are structurally identical.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}

	if v.Kind != o.Kind {
		return false
	}

	if v.Kind == KindInt {
		return v.Int == o.Int
	}

	if len(v.List) != len(o.List) {
		return false
	}

	for i, e := range v.List {
		if !e.Equal(o.List[i]) {
			return false
		}
	}

	return true
}

// String returns the canonical source-syntax form of the value, e.g.
// "10" or "array(1, 2, array())". Parsing the result reproduces an equal
// value.
func (v *Value) String() string {
	if v == nil {
		return ""
	}

	if v.Kind == KindInt {
		return strconv.FormatInt(v.Int, 10)
	}

	elems := make([]string, len(v.List))
	for i, e := range v.List {
		elems[i] = e.String()
	}

	return "array(" + strings.Join(elems, ", ") + ")"
}
