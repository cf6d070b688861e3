package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Helset123/olang/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintLn(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("display forms are concatenated", func(t *testing.T) {
		out := &bytes.Buffer{}
		interp := NewInterpreter(NewContext(ContextConfig{Out: out}))

		result, err := interp.Eval(`printLn(1 "a" [1 [2 "b"]] null true)`)
		require.NoError(t, err)
		assert.Equal(t, Null{}, result)
		assert.Equal(t, "1a[1 [2 b]]nulltrue\n", out.String())
	})

	t.Run("no arguments", func(t *testing.T) {
		out := &bytes.Buffer{}
		interp := NewInterpreter(NewContext(ContextConfig{Out: out}))

		_, err := interp.Eval(`printLn()`)
		require.NoError(t, err)
		assert.Equal(t, "\n", out.String())
	})

	t.Run("write failure", func(t *testing.T) {
		interp := NewInterpreter(NewContext(ContextConfig{Out: failingWriter{}}))

		_, err := interp.Eval(`printLn("a")`)
		kind, ok := ExceptionKindOf(err)
		require.True(t, ok)
		assert.Equal(t, Custom, kind)
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestReadLn(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("lines", func(t *testing.T) {
		interp := newTestInterpreter("hello\r\nworld\nlast")

		result, err := interp.Eval(`[readLn() readLn() readLn()]`)
		require.NoError(t, err)
		assert.Equal(t, List{String("hello"), String("world"), String("last")}, result)
	})

	t.Run("empty line", func(t *testing.T) {
		interp := newTestInterpreter("\nx\n")

		result, err := interp.Eval(`readLn()`)
		require.NoError(t, err)
		assert.Equal(t, String(""), result)
	})

	t.Run("end of input", func(t *testing.T) {
		interp := newTestInterpreter("a\n")

		_, err := interp.Eval(`readLn()`)
		require.NoError(t, err)

		_, err = interp.Eval(`readLn()`)
		kind, ok := ExceptionKindOf(err)
		require.True(t, ok)
		assert.Equal(t, Custom, kind)
		assert.ErrorContains(t, err, "EOF")
	})

	t.Run("arguments", func(t *testing.T) {
		_, err := newTestInterpreter("a\n").Eval(`readLn(1)`)
		kind, _ := ExceptionKindOf(err)
		assert.Equal(t, WrongNumberOfArguments, kind)
	})
}

func TestToStringAndLen(t *testing.T) {
	testconfig.AllowParallelization(t)

	testCases := []struct {
		input    string
		expected Value
		kind     ExceptionKind
	}{
		{`toString(12)`, String("12"), 0},
		{`toString("a b")`, String("a b"), 0},
		{`toString(null)`, String("null"), 0},
		{`toString(false)`, String("false"), 0},
		{`toString([])`, String("[]"), 0},
		{`toString(len)`, String("<builtin len>"), 0},
		{`toString()`, nil, WrongNumberOfArguments},
		{`len([])`, Int(0), 0},
		{`len([[1 2]])`, Int(1), 0},
		{`len(1)`, nil, ValueIsWrongType},
		{`len([] [])`, nil, WrongNumberOfArguments},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			result, err := evalTestSource(testCase.input)

			if testCase.kind != 0 {
				kind, ok := ExceptionKindOf(err)
				require.True(t, ok)
				assert.Equal(t, testCase.kind, kind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestBuiltinsCanBeShadowed(t *testing.T) {
	testconfig.AllowParallelization(t)

	result, err := evalTestSource(`var len = 3 len`)
	require.NoError(t, err)
	assert.Equal(t, Int(3), result)

	_, err = evalTestSource(`var len = 3 len([])`)
	kind, _ := ExceptionKindOf(err)
	assert.Equal(t, CalledValueIsNotFunction, kind)
}

func TestBuiltinsReceiveTheContext(t *testing.T) {
	testconfig.AllowParallelization(t)

	out := &strings.Builder{}
	ctx := NewContext(ContextConfig{Out: out})

	env := NewDefaultEnvironment()
	env.Declare("greet", &BuiltinFunction{
		Name: "greet",
		Fn: func(ctx *Context, args []Value) (Value, error) {
			if err := checkArgCount("greet", args, 1); err != nil {
				return nil, err
			}
			ctx.Out.Write([]byte("hello " + Display(args[0])))
			return Null{}, nil
		},
	})

	interp := NewInterpreter(ctx)
	interp.state.Env = env

	_, err := interp.Eval(`greet("bob")`)
	require.NoError(t, err)
	assert.Equal(t, "hello bob", out.String())
}
