package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Helset123/olang/internal/sourcecode"
)

var (
	_ = []sourcecode.LocatedError{(*LexerError)(nil), (*ParserError)(nil)}
)

type LexerErrorKind uint8

const (
	UnexpectedCharacter LexerErrorKind = iota + 1
	NotDigit
	UnterminatedString
	UnterminatedComment
	IntegerOverflow
)

func (k LexerErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case NotDigit:
		return "NotDigit"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedComment:
		return "UnterminatedComment"
	case IntegerOverflow:
		return "IntegerOverflow"
	default:
		return "InvalidLexerErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type LexerError struct {
	Kind   LexerErrorKind
	Region sourcecode.Region
	Char   rune
}

func (err *LexerError) MessageWithoutLocation() string {
	switch err.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", err.Char)
	case NotDigit:
		return fmt.Sprintf("expected a digit in integer literal, found %q", err.Char)
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedComment:
		return "unterminated block comment, missing " + BLOCK_COMMENT_END
	case IntegerOverflow:
		return "integer literal does not fit in 64 bits"
	default:
		return err.Kind.String()
	}
}

func (err *LexerError) LocationRegion() sourcecode.Region {
	return err.Region
}

func (err *LexerError) Error() string {
	return err.Region.String() + ": " + err.MessageWithoutLocation()
}

type ParserErrorKind uint8

const (
	ExpectedToken ParserErrorKind = iota + 1
	UnexpectedToken
)

func (k ParserErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	default:
		return "InvalidParserErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A ParserError is either an ExpectedToken or an UnexpectedToken error.
type ParserError struct {
	Kind         ParserErrorKind
	WhileParsing NodeKind  //GenericNodeKind if the parser was not building a specific expression
	Expected     TokenType //only set for ExpectedToken errors
	Found        Token
}

func (err *ParserError) MessageWithoutLocation() string {
	switch err.Kind {
	case ExpectedToken:
		return fmt.Sprintf("unexpected token found while parsing %q expression, expected token of value %q, found %q",
			err.WhileParsing, err.Expected, err.Found.Type)
	default:
		return fmt.Sprintf("unexpected token found while parsing %q expression, found token of value %q",
			err.WhileParsing, err.Found.Type)
	}
}

func (err *ParserError) LocationRegion() sourcecode.Region {
	return err.Found.Region
}

func (err *ParserError) Error() string {
	return err.Found.Region.String() + ": " + err.MessageWithoutLocation()
}

// IsIncomplete reports whether err was caused by the source ending too early,
// meaning that appending more text could make it valid.
func IsIncomplete(err error) bool {
	var lexerErr *LexerError
	if errors.As(err, &lexerErr) {
		return lexerErr.Kind == UnterminatedString || lexerErr.Kind == UnterminatedComment
	}

	var parserErr *ParserError
	if errors.As(err, &parserErr) {
		return parserErr.Found.Type == EOF
	}
	return false
}
