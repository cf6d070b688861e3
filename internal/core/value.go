package core

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Helset123/olang/internal/parse"
)

var (
	_ = []Value{Int(0), String(""), Bool(false), Null{}, List(nil), (*DefinedFunction)(nil), (*BuiltinFunction)(nil)}
)

// A Value is the result of evaluating an expression. Values are immutable:
// operations on lists return new lists.
type Value interface {
	String() string

	isValue()
}

type Int int64

type String string

type Bool bool

type Null struct{}

// A List is an ordered sequence of values, its backing array is never mutated once the list is created.
type List []Value

// A DefinedFunction is created by evaluating a function literal, it does not capture
// the scope it is created in.
type DefinedFunction struct {
	Parameters []string
	Body       *parse.Block
}

type BuiltinFunc func(ctx *Context, args []Value) (Value, error)

type BuiltinFunction struct {
	Name string
	Fn   BuiltinFunc
}

func (Int) isValue()              {}
func (String) isValue()           {}
func (Bool) isValue()             {}
func (Null) isValue()             {}
func (List) isValue()             {}
func (*DefinedFunction) isValue() {}
func (*BuiltinFunction) isValue() {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (s String) String() string {
	return string(s)
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Null) String() string {
	return parse.NULL_KEYWORD_STRING
}

func (l List) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('[')
	for i, elem := range l {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(elem.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

func (fn *DefinedFunction) String() string {
	return "<function(" + strings.Join(fn.Parameters, " ") + ")>"
}

func (fn *BuiltinFunction) String() string {
	return "<builtin " + fn.Name + ">"
}

// Append returns a new list made of the elements of l followed by v, l is left untouched.
func (l List) Append(v Value) List {
	return append(slices.Clone(l), v)
}

// Display returns the textual form of v used by printLn and toString.
func Display(v Value) string {
	return v.String()
}

// TypeName returns the name of the type of v as shown in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case List:
		return "list"
	case *DefinedFunction, *BuiltinFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Equal reports whether a and b are structurally equal. Functions are never equal to anything,
// not even to themselves.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Null:
		_, ok := b.(Null)
		return ok
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
