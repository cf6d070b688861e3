package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Helset123/olang/internal/parse"
	"github.com/Helset123/olang/internal/testconfig"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreter(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("lexer and parser errors are returned unchanged", func(t *testing.T) {
		_, err := evalTestSource("1 $")
		var lexerErr *parse.LexerError
		assert.ErrorAs(t, err, &lexerErr)

		_, err = evalTestSource("var = 1")
		var parserErr *parse.ParserError
		assert.ErrorAs(t, err, &parserErr)
	})

	t.Run("nothing is evaluated if the source does not parse", func(t *testing.T) {
		out := &bytes.Buffer{}
		interp := NewInterpreter(NewContext(ContextConfig{Out: out}))

		_, err := interp.Eval(`printLn("a") (`)
		require.Error(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("evaluation stops at the first error", func(t *testing.T) {
		out := &bytes.Buffer{}
		interp := NewInterpreter(NewContext(ContextConfig{Out: out}))

		_, err := interp.Eval(`printLn("a") x printLn("b")`)
		require.Error(t, err)
		assert.Equal(t, "a\n", out.String())
	})

	t.Run("ids are unique", func(t *testing.T) {
		assert.NotEqual(t, newTestInterpreter("").ID(), newTestInterpreter("").ID())
	})

	t.Run("logs", func(t *testing.T) {
		logs := &bytes.Buffer{}
		logger := zerolog.New(logs).Level(zerolog.DebugLevel)

		interp := NewInterpreter(NewContext(ContextConfig{Logger: &logger}))
		_, err := interp.Eval("1 2")
		require.NoError(t, err)

		output := logs.String()
		assert.Contains(t, output, `"`+INTERPRETER_ID_LOG_FIELD_NAME+`":"`+interp.ID().String()+`"`)
		assert.Contains(t, output, `"expressions":2`)
		assert.Contains(t, output, "program evaluated")
	})

	t.Run("default context", func(t *testing.T) {
		interp := NewInterpreter(nil)
		assert.NotNil(t, interp.Context().Out)
		assert.NotNil(t, interp.Context().In)
	})

	t.Run("package-level eval", func(t *testing.T) {
		result, err := Eval("var a = 2 a * 21")
		require.NoError(t, err)
		assert.Equal(t, Int(42), result)
	})

	t.Run("unhandled exception wraps the exception", func(t *testing.T) {
		_, err := Eval("1 / 0")

		var exception *Exception
		require.ErrorAs(t, err, &exception)
		assert.Equal(t, DivisionByZero, exception.Kind)
		assert.True(t, strings.HasPrefix(err.Error(), "1:1: Unhandled exception: DivisionByZero"))
	})
}
