package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

const (
	LANGUAGE_NAME = "olang"
)

// Lexer is a chroma lexer for olang source code, it is registered in the chroma lexer registry.
var Lexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      LANGUAGE_NAME,
		Aliases:   []string{LANGUAGE_NAME},
		Filenames: []string{"*.olang"},
		MimeTypes: []string{"text/x-olang"},
	},
	olangRules,
))

func olangRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Text},
			{Pattern: `#\[[\s\S]*?\]#`, Type: chroma.CommentMultiline},
			{Pattern: `#[^\n]*`, Type: chroma.CommentSingle},
			{Pattern: `"[^"]*"`, Type: chroma.LiteralString},
			{Pattern: `\d+`, Type: chroma.LiteralNumberInteger},
			{Pattern: chroma.Words(`\b`, `\b`, "if", "elif", "else", "while", "for", "loop", "continue", "break"), Type: chroma.Keyword},
			{Pattern: chroma.Words(`\b`, `\b`, "var", "fun"), Type: chroma.KeywordDeclaration},
			{Pattern: chroma.Words(`\b`, `\b`, "true", "false", "null"), Type: chroma.KeywordConstant},
			{Pattern: `([\p{L}][\p{L}\p{N}]*)(\()`, Type: chroma.ByGroups(chroma.NameFunction, chroma.Punctuation)},
			{Pattern: `[\p{L}][\p{L}\p{N}]*`, Type: chroma.Name},
			{Pattern: `\*\*|&&|\|\||==|!=|<=|>=|\+\+|--|\+=|-=|\*=|/=|%=|[-+*/%=<>]`, Type: chroma.Operator},
			{Pattern: `[(){}\[\]]`, Type: chroma.Punctuation},
			{Pattern: `.`, Type: chroma.Error},
		},
	}
}
