package parse

import (
	"fmt"
	"strconv"

	"github.com/Helset123/olang/internal/sourcecode"
)

const (
	FUN_KEYWORD_STRING      = "fun"
	TRUE_KEYWORD_STRING     = "true"
	FALSE_KEYWORD_STRING    = "false"
	NULL_KEYWORD_STRING     = "null"
	VAR_KEYWORD_STRING      = "var"
	IF_KEYWORD_STRING       = "if"
	ELIF_KEYWORD_STRING     = "elif"
	ELSE_KEYWORD_STRING     = "else"
	WHILE_KEYWORD_STRING    = "while"
	FOR_KEYWORD_STRING      = "for"
	LOOP_KEYWORD_STRING     = "loop"
	CONTINUE_KEYWORD_STRING = "continue"
	BREAK_KEYWORD_STRING    = "break"
)

type Token struct {
	Type   TokenType         `json:"type"`
	Region sourcecode.Region `json:"region"`

	//text of identifiers and string literals
	Raw string `json:"raw,omitempty"`

	//value of integer literals
	Int int64 `json:"int,omitempty"`

	//true if whitespace or a comment separates the token from the previous one
	SpaceBefore bool `json:"spaceBefore,omitempty"`
}

// Str returns the source form of the token.
func (t Token) Str() string {
	switch t.Type {
	case IDENTIFIER:
		return t.Raw
	case STRING_LITERAL:
		return strconv.Quote(t.Raw)
	case INT_LITERAL:
		return strconv.FormatInt(t.Int, 10)
	case EOF:
		return "end of input"
	}
	if int(t.Type) < len(tokenStrings) && tokenStrings[t.Type] != "" {
		return tokenStrings[t.Type]
	}
	panic(fmt.Errorf("invalid token: %#v", t))
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Type, t.Str())
}

type TokenType uint8

const (
	//WITH NO ASSOCIATED VALUE
	FUN_KEYWORD TokenType = iota + 1
	TRUE_KEYWORD
	FALSE_KEYWORD
	NULL_KEYWORD
	VAR_KEYWORD
	IF_KEYWORD
	ELIF_KEYWORD
	ELSE_KEYWORD
	WHILE_KEYWORD
	FOR_KEYWORD
	LOOP_KEYWORD
	CONTINUE_KEYWORD
	BREAK_KEYWORD

	OPENING_PARENTHESIS
	CLOSING_PARENTHESIS
	OPENING_CURLY_BRACKET
	CLOSING_CURLY_BRACKET
	OPENING_BRACKET
	CLOSING_BRACKET

	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	DOUBLE_ASTERISK
	EQUAL
	EQUAL_EQUAL
	EXCLAMATION_MARK_EQUAL
	LESS_THAN
	LESS_OR_EQUAL
	GREATER_THAN
	GREATER_OR_EQUAL
	DOUBLE_AMPERSAND
	DOUBLE_PIPE
	PLUS_PLUS
	MINUS_MINUS
	PLUS_EQUAL
	MINUS_EQUAL
	MUL_EQUAL
	DIV_EQUAL
	MOD_EQUAL

	EOF

	//WITH VALUE
	INT_LITERAL
	STRING_LITERAL
	IDENTIFIER
)

var (
	tokenStrings = [...]string{
		FUN_KEYWORD:      FUN_KEYWORD_STRING,
		TRUE_KEYWORD:     TRUE_KEYWORD_STRING,
		FALSE_KEYWORD:    FALSE_KEYWORD_STRING,
		NULL_KEYWORD:     NULL_KEYWORD_STRING,
		VAR_KEYWORD:      VAR_KEYWORD_STRING,
		IF_KEYWORD:       IF_KEYWORD_STRING,
		ELIF_KEYWORD:     ELIF_KEYWORD_STRING,
		ELSE_KEYWORD:     ELSE_KEYWORD_STRING,
		WHILE_KEYWORD:    WHILE_KEYWORD_STRING,
		FOR_KEYWORD:      FOR_KEYWORD_STRING,
		LOOP_KEYWORD:     LOOP_KEYWORD_STRING,
		CONTINUE_KEYWORD: CONTINUE_KEYWORD_STRING,
		BREAK_KEYWORD:    BREAK_KEYWORD_STRING,

		OPENING_PARENTHESIS:   "(",
		CLOSING_PARENTHESIS:   ")",
		OPENING_CURLY_BRACKET: "{",
		CLOSING_CURLY_BRACKET: "}",
		OPENING_BRACKET:       "[",
		CLOSING_BRACKET:       "]",

		PLUS:                   "+",
		MINUS:                  "-",
		ASTERISK:               "*",
		SLASH:                  "/",
		PERCENT:                "%",
		DOUBLE_ASTERISK:        "**",
		EQUAL:                  "=",
		EQUAL_EQUAL:            "==",
		EXCLAMATION_MARK_EQUAL: "!=",
		LESS_THAN:              "<",
		LESS_OR_EQUAL:          "<=",
		GREATER_THAN:           ">",
		GREATER_OR_EQUAL:       ">=",
		DOUBLE_AMPERSAND:       "&&",
		DOUBLE_PIPE:            "||",
		PLUS_PLUS:              "++",
		MINUS_MINUS:            "--",
		PLUS_EQUAL:             "+=",
		MINUS_EQUAL:            "-=",
		MUL_EQUAL:              "*=",
		DIV_EQUAL:              "/=",
		MOD_EQUAL:              "%=",
	}

	tokenTypeNames = [...]string{
		FUN_KEYWORD:      "KeywordFun",
		TRUE_KEYWORD:     "KeywordTrue",
		FALSE_KEYWORD:    "KeywordFalse",
		NULL_KEYWORD:     "KeywordNull",
		VAR_KEYWORD:      "KeywordVar",
		IF_KEYWORD:       "KeywordIf",
		ELIF_KEYWORD:     "KeywordElif",
		ELSE_KEYWORD:     "KeywordElse",
		WHILE_KEYWORD:    "KeywordWhile",
		FOR_KEYWORD:      "KeywordFor",
		LOOP_KEYWORD:     "KeywordLoop",
		CONTINUE_KEYWORD: "KeywordContinue",
		BREAK_KEYWORD:    "KeywordBreak",

		OPENING_PARENTHESIS:   "OpenParenthesis",
		CLOSING_PARENTHESIS:   "CloseParenthesis",
		OPENING_CURLY_BRACKET: "OpenBrace",
		CLOSING_CURLY_BRACKET: "CloseBrace",
		OPENING_BRACKET:       "OpenBracket",
		CLOSING_BRACKET:       "CloseBracket",

		PLUS:                   "PlusSign",
		MINUS:                  "MinusSign",
		ASTERISK:               "MultiplicationSign",
		SLASH:                  "DivisionSign",
		PERCENT:                "ModuloSign",
		DOUBLE_ASTERISK:        "ExponentSign",
		EQUAL:                  "EqualSign",
		EQUAL_EQUAL:            "IsEqual",
		EXCLAMATION_MARK_EQUAL: "IsNotEqual",
		LESS_THAN:              "IsLessThan",
		LESS_OR_EQUAL:          "IsLessThanOrEqual",
		GREATER_THAN:           "IsGreaterThan",
		GREATER_OR_EQUAL:       "IsGreaterThanOrEqual",
		DOUBLE_AMPERSAND:       "And",
		DOUBLE_PIPE:            "Or",
		PLUS_PLUS:              "Increment",
		MINUS_MINUS:            "Decrement",
		PLUS_EQUAL:             "PlusEqual",
		MINUS_EQUAL:            "MinusEqual",
		MUL_EQUAL:              "MultiplyEqual",
		DIV_EQUAL:              "DivideEqual",
		MOD_EQUAL:              "ModuloEqual",

		EOF: "EndOfFile",

		INT_LITERAL:    "Int",
		STRING_LITERAL: "String",
		IDENTIFIER:     "Identifier",
	}

	KEYWORDS = map[string]TokenType{
		FUN_KEYWORD_STRING:      FUN_KEYWORD,
		TRUE_KEYWORD_STRING:     TRUE_KEYWORD,
		FALSE_KEYWORD_STRING:    FALSE_KEYWORD,
		NULL_KEYWORD_STRING:     NULL_KEYWORD,
		VAR_KEYWORD_STRING:      VAR_KEYWORD,
		IF_KEYWORD_STRING:       IF_KEYWORD,
		ELIF_KEYWORD_STRING:     ELIF_KEYWORD,
		ELSE_KEYWORD_STRING:     ELSE_KEYWORD,
		WHILE_KEYWORD_STRING:    WHILE_KEYWORD,
		FOR_KEYWORD_STRING:      FOR_KEYWORD,
		LOOP_KEYWORD_STRING:     LOOP_KEYWORD,
		CONTINUE_KEYWORD_STRING: CONTINUE_KEYWORD,
		BREAK_KEYWORD_STRING:    BREAK_KEYWORD,
	}

	singleCharTokens = map[rune]TokenType{
		'(': OPENING_PARENTHESIS,
		')': CLOSING_PARENTHESIS,
		'{': OPENING_CURLY_BRACKET,
		'}': CLOSING_CURLY_BRACKET,
		'[': OPENING_BRACKET,
		']': CLOSING_BRACKET,
		'+': PLUS,
		'-': MINUS,
		'*': ASTERISK,
		'/': SLASH,
		'%': PERCENT,
		'=': EQUAL,
		'<': LESS_THAN,
		'>': GREATER_THAN,
	}

	//first rune -> second rune -> token type
	doubleCharTokens = map[rune]map[rune]TokenType{
		'*': {'*': DOUBLE_ASTERISK, '=': MUL_EQUAL},
		'&': {'&': DOUBLE_AMPERSAND},
		'|': {'|': DOUBLE_PIPE},
		'!': {'=': EXCLAMATION_MARK_EQUAL},
		'=': {'=': EQUAL_EQUAL},
		'<': {'=': LESS_OR_EQUAL},
		'>': {'=': GREATER_OR_EQUAL},
		'+': {'+': PLUS_PLUS, '=': PLUS_EQUAL},
		'-': {'-': MINUS_MINUS, '=': MINUS_EQUAL},
		'/': {'=': DIV_EQUAL},
		'%': {'=': MOD_EQUAL},
	}
)

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) && tokenTypeNames[t] != "" {
		return tokenTypeNames[t]
	}
	return "InvalidToken(" + strconv.Itoa(int(t)) + ")"
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t TokenType) IsKeyword() bool {
	return t >= FUN_KEYWORD && t <= BREAK_KEYWORD
}

// endsOperand reports whether a token of type t can be the last token of an operand,
// in which case a following '-' is a binary operator.
func (t TokenType) endsOperand() bool {
	switch t {
	case INT_LITERAL, STRING_LITERAL, IDENTIFIER,
		TRUE_KEYWORD, FALSE_KEYWORD, NULL_KEYWORD,
		CLOSING_PARENTHESIS, CLOSING_CURLY_BRACKET, CLOSING_BRACKET,
		PLUS_PLUS, MINUS_MINUS, CONTINUE_KEYWORD, BREAK_KEYWORD:
		return true
	}
	return false
}
