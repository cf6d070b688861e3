package parse

import (
	"testing"

	"github.com/Helset123/olang/internal/sourcecode"
	"github.com/Helset123/olang/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseWithoutRegions parses source and zeroes the region of every node so that trees can be compared structurally.
func parseWithoutRegions(t *testing.T, source string) []Node {
	program, err := ParseSource(source)
	require.NoError(t, err)

	err = WalkProgram(program, func(node, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		node.BasePtr().Region = sourcecode.Region{}
		return ContinueTraversal, nil
	}, nil)
	require.NoError(t, err)

	return program.Expressions
}

func intLit(v int64) *IntLiteral {
	return &IntLiteral{Value: v}
}

func ident(name string) *IdentifierLiteral {
	return &IdentifierLiteral{Name: name}
}

func binary(op BinaryOperator, left, right Node) *BinaryExpression {
	return &BinaryExpression{Operator: op, Left: left, Right: right}
}

func block(exprs ...Node) *Block {
	return &Block{Expressions: exprs}
}

func TestParse(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("empty program", func(t *testing.T) {
		program, err := ParseSource("")
		require.NoError(t, err)
		assert.Empty(t, program.Expressions)
	})

	t.Run("literals", func(t *testing.T) {
		exprs := parseWithoutRegions(t, `1 "a" true false null x`)
		assert.Equal(t, []Node{
			intLit(1),
			&StringLiteral{Value: "a"},
			&BooleanLiteral{Value: true},
			&BooleanLiteral{Value: false},
			&NullLiteral{},
			ident("x"),
		}, exprs)
	})

	t.Run("precedence", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected Node
		}{
			{"1 + 2 * 3", binary(Add, intLit(1), binary(Mul, intLit(2), intLit(3)))},
			{"10-2+3", binary(Add, binary(Sub, intLit(10), intLit(2)), intLit(3))},
			{"2 * 3 ** 2", binary(Mul, intLit(2), binary(Exponentiation, intLit(3), intLit(2)))},
			{"2 ** 3 ** 2", binary(Exponentiation, binary(Exponentiation, intLit(2), intLit(3)), intLit(2))},
			{"(1 + 2) * 3", binary(Mul, binary(Add, intLit(1), intLit(2)), intLit(3))},
			{"1 < 2 == true", binary(Equal, binary(LessThan, intLit(1), intLit(2)), &BooleanLiteral{Value: true})},
			{"a == 1 && b != 2 || c", binary(Or,
				binary(And, binary(Equal, ident("a"), intLit(1)), binary(NotEqual, ident("b"), intLit(2))),
				ident("c"),
			)},
			{"7 % 3 / 1", binary(Div, binary(Mod, intLit(7), intLit(3)), intLit(1))},
		}

		for _, testCase := range testCases {
			t.Run(testCase.input, func(t *testing.T) {
				exprs := parseWithoutRegions(t, testCase.input)
				require.Len(t, exprs, 1)
				assert.Equal(t, testCase.expected, exprs[0])
			})
		}
	})

	t.Run("variable declaration", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "var x = 1 + 2")
		assert.Equal(t, []Node{
			&VariableDeclaration{Name: "x", Init: binary(Add, intLit(1), intLit(2))},
		}, exprs)
	})

	t.Run("assignments", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "x = 1 y += 2 z %= 3")
		assert.Equal(t, []Node{
			&Assignment{Name: "x", Operator: Set, Value: intLit(1)},
			&Assignment{Name: "y", Operator: PlusAssign, Value: intLit(2)},
			&Assignment{Name: "z", Operator: ModAssign, Value: intLit(3)},
		}, exprs)
	})

	t.Run("update expressions", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "i++ j--")
		assert.Equal(t, []Node{
			&UpdateExpression{Name: "i", Operator: Increment},
			&UpdateExpression{Name: "j", Operator: Decrement},
		}, exprs)
	})

	t.Run("call", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "f(1 x g())")
		assert.Equal(t, []Node{
			&CallExpression{Callee: "f", Arguments: []Node{
				intLit(1),
				ident("x"),
				&CallExpression{Callee: "g"},
			}},
		}, exprs)
	})

	t.Run("function literal", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "fun(a b) { a + b }")
		assert.Equal(t, []Node{
			&FunctionLiteral{
				Parameters: []string{"a", "b"},
				Body:       block(binary(Add, ident("a"), ident("b"))),
			},
		}, exprs)
	})

	t.Run("function literal without parameters", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "fun() {}")
		assert.Equal(t, []Node{
			&FunctionLiteral{Parameters: []string{}, Body: block()},
		}, exprs)
	})

	t.Run("if elif else", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "if a { 1 } elif b { 2 } else { 3 }")
		assert.Equal(t, []Node{
			&IfExpression{
				Clauses: []IfClause{
					{Test: ident("a"), Body: block(intLit(1))},
					{Test: ident("b"), Body: block(intLit(2))},
				},
				Else: block(intLit(3)),
			},
		}, exprs)
	})

	t.Run("while", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "while i < 3 { i++ }")
		assert.Equal(t, []Node{
			&LoopExpression{
				Test: binary(LessThan, ident("i"), intLit(3)),
				Body: block(&UpdateExpression{Name: "i", Operator: Increment}),
			},
		}, exprs)
	})

	t.Run("for", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "for var i = 0 i < 3 i++ { continue }")
		assert.Equal(t, []Node{
			&LoopExpression{
				Init:   &VariableDeclaration{Name: "i", Init: intLit(0)},
				Test:   binary(LessThan, ident("i"), intLit(3)),
				Update: &UpdateExpression{Name: "i", Operator: Increment},
				Body:   block(&ContinueExpression{}),
			},
		}, exprs)
	})

	t.Run("loop", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "loop { break }")
		assert.Equal(t, []Node{
			&LoopExpression{Body: block(&BreakExpression{})},
		}, exprs)
	})

	t.Run("list and index", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "[-1 2 x][0][1]")
		assert.Equal(t, []Node{
			&IndexExpression{
				Indexed: &IndexExpression{
					Indexed: &ListLiteral{Elements: []Node{intLit(-1), intLit(2), ident("x")}},
					Index:   intLit(0),
				},
				Index: intLit(1),
			},
		}, exprs)
	})

	t.Run("bracket after space starts a new list", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "x [0]")
		assert.Equal(t, []Node{
			ident("x"),
			&ListLiteral{Elements: []Node{intLit(0)}},
		}, exprs)
	})

	t.Run("nested blocks", func(t *testing.T) {
		exprs := parseWithoutRegions(t, "{ { 1 } 2 }")
		assert.Equal(t, []Node{
			block(block(intLit(1)), intLit(2)),
		}, exprs)
	})

	t.Run("regions", func(t *testing.T) {
		program, err := ParseSource("var x = (1 + 2)\nf(x)")
		require.NoError(t, err)
		require.Len(t, program.Expressions, 2)

		decl := program.Expressions[0].(*VariableDeclaration)
		assert.Equal(t, int32(0), decl.Region.Start.Offset)
		assert.Equal(t, int32(15), decl.Region.End.Offset)

		//the parentheses are included
		assert.Equal(t, int32(8), decl.Init.Base().Region.Start.Offset)

		call := program.Expressions[1].(*CallExpression)
		assert.Equal(t, "2:1", call.Region.Start.String())
		assert.Equal(t, int32(20), call.Region.End.Offset)
	})
}

func TestParseErrors(t *testing.T) {
	testconfig.AllowParallelization(t)

	testCases := []struct {
		name         string
		input        string
		kind         ParserErrorKind
		whileParsing NodeKind
		expected     TokenType
		found        TokenType
		incomplete   bool
	}{
		{"missing declaration equal sign", "var x 1", ExpectedToken, VariableDeclarationNodeKind, EQUAL, INT_LITERAL, false},
		{"missing declaration name", "var = 1", ExpectedToken, VariableDeclarationNodeKind, IDENTIFIER, EQUAL, false},
		{"unclosed block", "{ 1", ExpectedToken, BlockNodeKind, CLOSING_CURLY_BRACKET, EOF, true},
		{"unclosed call", "f(1", ExpectedToken, CallNodeKind, CLOSING_PARENTHESIS, EOF, true},
		{"unclosed parentheses", "(1", ExpectedToken, ParenthesizedNodeKind, CLOSING_PARENTHESIS, EOF, true},
		{"parenthesized expression closed by a bracket", "(1]", ExpectedToken, ParenthesizedNodeKind, CLOSING_PARENTHESIS, CLOSING_BRACKET, false},
		{"unclosed list", "[1 2", ExpectedToken, ListNodeKind, CLOSING_BRACKET, EOF, true},
		{"if without block", "if true 1", ExpectedToken, BlockNodeKind, OPENING_CURLY_BRACKET, INT_LITERAL, false},
		{"invalid parameter", "fun(1) {}", UnexpectedToken, FunctionNodeKind, 0, INT_LITERAL, false},
		{"stray closing brace", "}", UnexpectedToken, GenericNodeKind, 0, CLOSING_CURLY_BRACKET, false},
		{"stray else", "else {}", UnexpectedToken, GenericNodeKind, 0, ELSE_KEYWORD, false},
		{"missing right operand", "1 +", UnexpectedToken, GenericNodeKind, 0, EOF, true},
		{"unclosed index", "x[0", ExpectedToken, IndexNodeKind, CLOSING_BRACKET, EOF, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			program, err := ParseSource(testCase.input)
			assert.Nil(t, program)

			var parserErr *ParserError
			require.ErrorAs(t, err, &parserErr)

			assert.Equal(t, testCase.kind, parserErr.Kind)
			assert.Equal(t, testCase.whileParsing, parserErr.WhileParsing)
			assert.Equal(t, testCase.expected, parserErr.Expected)
			assert.Equal(t, testCase.found, parserErr.Found.Type)
			assert.Equal(t, testCase.incomplete, IsIncomplete(err))
		})
	}

	t.Run("message", func(t *testing.T) {
		_, err := ParseSource("var x 1")
		assert.EqualError(t, err,
			`1:7: unexpected token found while parsing "VariableDeclaration" expression, expected token of value "EqualSign", found "Int"`)
	})

	t.Run("lexer errors are returned unchanged", func(t *testing.T) {
		_, err := ParseSource(`"abc`)

		var lexerErr *LexerError
		require.ErrorAs(t, err, &lexerErr)
		assert.Equal(t, UnterminatedString, lexerErr.Kind)
		assert.True(t, IsIncomplete(err))
	})
}

func TestMustParseSource(t *testing.T) {
	testconfig.AllowParallelization(t)

	assert.Panics(t, func() {
		MustParseSource("var")
	})
	assert.NotPanics(t, func() {
		MustParseSource("var a = 1")
	})
}
