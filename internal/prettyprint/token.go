package prettyprint

import (
	"bufio"
	"io"

	"github.com/Helset123/olang/internal/parse"
	"github.com/Helset123/olang/internal/utils"
)

// TokenColor returns the color of a token type, punctuation and operators have no color.
func TokenColor(tokenType parse.TokenType, colors *PrettyPrintColors) []byte {
	switch tokenType {
	case parse.IF_KEYWORD, parse.ELIF_KEYWORD, parse.ELSE_KEYWORD, parse.WHILE_KEYWORD, parse.FOR_KEYWORD,
		parse.LOOP_KEYWORD, parse.CONTINUE_KEYWORD, parse.BREAK_KEYWORD:
		return colors.ControlKeyword
	case parse.VAR_KEYWORD, parse.FUN_KEYWORD:
		return colors.OtherKeyword
	case parse.TRUE_KEYWORD, parse.FALSE_KEYWORD, parse.NULL_KEYWORD:
		return colors.Constant
	case parse.INT_LITERAL:
		return colors.NumberLiteral
	case parse.STRING_LITERAL:
		return colors.StringLiteral
	case parse.IDENTIFIER:
		return colors.IdentifierLiteral
	case parse.EOF:
		return colors.DiscreteColor
	}
	return nil
}

// PrintTokens writes one line per token: its position, its type and its source form.
func PrintTokens(w io.Writer, tokens []parse.Token, config *PrettyPrintConfig) (finalErr error) {
	colors := config.Colors
	if colors == nil {
		colors = &DEFAULT_DARKMODE_PRINT_COLORS
	}

	writer := NewWriter(bufio.NewWriter(w), config)

	defer func() {
		if e := recover(); e != nil {
			finalErr = utils.ConvertPanicValueToError(e)
		}
	}()

	for _, token := range tokens {
		writer.WriteColored(colors.DiscreteColor, token.Region.Start.String())
		writer.WriteSingleByte(' ')
		writer.WriteString(token.Type.String())
		writer.WriteSingleByte(' ')
		writer.WriteColored(TokenColor(token.Type, colors), token.Str())
		writer.WriteSingleByte('\n')
	}

	return writer.Flush()
}
