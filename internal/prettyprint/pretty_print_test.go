package prettyprint

import (
	"errors"
	"strings"
	"testing"

	"github.com/Helset123/olang/internal/core"
	"github.com/Helset123/olang/internal/parse"
	"github.com/Helset123/olang/internal/testconfig"
	"github.com/Helset123/olang/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	testconfig.AllowParallelization(t)

	compact := &PrettyPrintConfig{Compact: true}
	multiline := &PrettyPrintConfig{Indent: []byte("  ")}

	testCases := []struct {
		name   string
		value  core.Value
		config *PrettyPrintConfig
		output string
	}{
		{"int", core.Int(-3), compact, "-3"},
		{"string", core.String("a\"b"), compact, `"a\"b"`},
		{"bool", core.Bool(true), compact, "true"},
		{"null", core.Null{}, compact, "null"},
		{"empty list", core.List{}, compact, "[]"},
		{"flat list", core.List{core.Int(1), core.String("x"), core.Null{}}, multiline, `[1 "x" null]`},
		{"nested list compact", core.List{core.Int(1), core.List{core.Int(2)}}, compact, "[1 [2]]"},
		{"nested list multiline", core.List{core.Int(1), core.List{core.Int(2), core.Int(3)}}, multiline, "[\n  1\n  [2 3]\n]"},
		{
			"max depth",
			core.List{core.List{core.List{core.Int(1)}}},
			&PrettyPrintConfig{Compact: true, MaxDepth: 2},
			"[[[...]]]",
		},
		{"builtin", &core.BuiltinFunction{Name: "len"}, compact, "<builtin len>"},
		{"function", &core.DefinedFunction{Parameters: []string{"a", "b"}}, compact, "<function(a b)>"},
		{
			"decoded top level string",
			core.String("a\"b"),
			&PrettyPrintConfig{PrintDecodedTopLevelStrings: true},
			`a"b`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.output, Sprint(testCase.value, testCase.config))
		})
	}

	t.Run("colorized", func(t *testing.T) {
		config := &PrettyPrintConfig{Colorize: true, Compact: true, Colors: &DEFAULT_DARKMODE_PRINT_COLORS}
		value := core.List{core.Int(1), core.String("x")}

		output := Sprint(value, config)
		assert.Contains(t, output, string(DEFAULT_DARKMODE_PRINT_COLORS.NumberLiteral)+"1")
		assert.Equal(t, `[1 "x"]`, utils.StripANSISequences(output))
	})
}

func TestPrintTokens(t *testing.T) {
	testconfig.AllowParallelization(t)

	tokens, err := parse.Tokenize(`var a = "x"`)
	require.NoError(t, err)

	buf := &strings.Builder{}
	require.NoError(t, PrintTokens(buf, tokens, &PrettyPrintConfig{Colorize: true}))

	lines := strings.Split(strings.TrimSuffix(utils.StripANSISequences(buf.String()), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "1:1 KeywordVar var", lines[0])
	assert.Equal(t, `1:9 String "x"`, lines[3])
}

func TestPrintDiagnostic(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("exception", func(t *testing.T) {
		source := "var a = 1\nvar b = c + 1"
		_, err := core.NewInterpreter(nil).Eval(source)
		require.Error(t, err)

		buf := &strings.Builder{}
		require.NoError(t, PrintDiagnostic(buf, err, source, DiagnosticConfig{Hint: "did you mean a?"}))

		assert.Equal(t,
			"error: 2:9: Unhandled exception: UndeclaredIdentifier: c is not declared\n"+
				"2 | var b = c + 1\n"+
				"  |         ^\n"+
				"hint: did you mean a?\n",
			buf.String(),
		)
	})

	t.Run("parse error", func(t *testing.T) {
		source := "printLn(1 2"
		_, err := parse.ParseSource(source)
		require.Error(t, err)

		buf := &strings.Builder{}
		require.NoError(t, PrintDiagnostic(buf, err, source, DiagnosticConfig{}))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "1 | printLn(1 2", lines[1])
		assert.Equal(t, "  |            ^", lines[2])
	})

	t.Run("error without location", func(t *testing.T) {
		buf := &strings.Builder{}
		require.NoError(t, PrintDiagnostic(buf, errors.New("failed"), "", DiagnosticConfig{}))
		assert.Equal(t, "error: failed\n", buf.String())
	})

	t.Run("colorized and highlighted", func(t *testing.T) {
		source := "var a = b"
		_, err := core.NewInterpreter(nil).Eval(source)
		require.Error(t, err)

		buf := &strings.Builder{}
		config := DiagnosticConfig{
			PrettyPrintConfig: PrettyPrintConfig{Colorize: true, Colors: &DEFAULT_LIGHTMODE_PRINT_COLORS},
			HighlightStyle:    "friendly",
		}
		require.NoError(t, PrintDiagnostic(buf, err, source, config))

		assert.Contains(t, buf.String(), string(DEFAULT_LIGHTMODE_PRINT_COLORS.ErrorColor))
		assert.Equal(t,
			"error: 1:9: Unhandled exception: UndeclaredIdentifier: b is not declared\n"+
				"1 | var a = b\n"+
				"  |         ^\n",
			utils.StripANSISequences(buf.String()),
		)
	})
}
