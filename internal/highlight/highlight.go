package highlight

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	DARK_BACKGROUND_STYLE  = "monokai"
	LIGHT_BACKGROUND_STYLE = "friendly"
)

// StyleName returns the name of the chroma style to use for a terminal background.
func StyleName(darkBackground bool) string {
	if darkBackground {
		return DARK_BACKGROUND_STYLE
	}
	return LIGHT_BACKGROUND_STYLE
}

// Highlight writes source to w with 256-color escape sequences, an unknown style falls back
// to the chroma default style.
func Highlight(w io.Writer, source string, styleName string) error {
	iterator, err := Lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}

	return formatters.TTY256.Format(w, styles.Get(styleName), iterator)
}

// String is like Highlight but returns the highlighted text, source is returned unchanged if
// highlighting fails.
func String(source string, styleName string) string {
	buf := &strings.Builder{}
	if err := Highlight(buf, source, styleName); err != nil {
		return source
	}
	return buf.String()
}

// TokenTypes returns the chroma token types of source without whitespace, it is mostly useful for testing.
func TokenTypes(source string) ([]chroma.TokenType, error) {
	iterator, err := Lexer.Tokenise(nil, source)
	if err != nil {
		return nil, err
	}

	var types []chroma.TokenType
	for _, token := range iterator.Tokens() {
		if token.Type == chroma.Text && strings.TrimSpace(token.Value) == "" {
			continue
		}
		types = append(types, token.Type)
	}
	return types, nil
}
