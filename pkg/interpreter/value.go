package interpreter

import "strconv"

type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindString
	KindBool
)

// Value is a dynamically-typed GZ value. Values are produced only by
// evaluation and compared structurally; there is no object identity.
type Value struct {
	Kind Kind
	I64  int64
	Str  string
	Bool bool
}

// Null is the wala value.
var Null = Value{Kind: KindNull}

// NewInt creates an integer Value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// NewString creates a string Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NewBool creates a boolean Value.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// String renders the value the way sulat prints it. Booleans and null
// use the language's own literals.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindString:
		return v.Str
	case KindBool:
		if v.Bool {
			return "tama"
		}
		return "mali"
	default:
		return "wala"
	}
}

// Truthy reports whether the value counts as true in a condition.
// Zero, the empty string, mali, and wala are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindInt:
		return v.I64 != 0
	case KindString:
		return v.Str != ""
	case KindBool:
		return v.Bool
	default:
		return false
	}
}

// Equal compares two values structurally. Values of different kinds
// are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindInt:
		return v.I64 == o.I64
	case KindString:
		return v.Str == o.Str
	case KindBool:
		return v.Bool == o.Bool
	default:
		return true
	}
}

// IsNull reports whether the value is wala.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}
