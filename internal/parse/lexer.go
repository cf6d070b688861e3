package parse

import (
	"math"
	"unicode"

	"github.com/Helset123/olang/internal/sourcecode"
)

const (
	LINE_COMMENT_START        = '#'
	BLOCK_COMMENT_SECOND_RUNE = '['
	BLOCK_COMMENT_END         = "]#"
)

// Tokenize scans source and returns its tokens, the last token is always an EOF token.
// The first lexical error aborts the scan.
func Tokenize(source string) ([]Token, error) {
	return newLexer([]rune(source)).tokenize()
}

type lexer struct {
	s       []rune
	i       int32
	len     int32
	counter *sourcecode.Counter //position of s[i]

	tokens      []Token
	spaceBefore bool
}

func newLexer(s []rune) *lexer {
	return &lexer{
		s:       s,
		len:     int32(len(s)),
		counter: sourcecode.NewCounter(),
		tokens:  make([]Token, 0, len(s)/3+1),
	}
}

func (l *lexer) pos() sourcecode.Position {
	return l.counter.Position()
}

func (l *lexer) advance() {
	l.counter.Advance(l.s[l.i])
	l.i++
}

func (l *lexer) peek() (rune, bool) {
	if l.i+1 >= l.len {
		return 0, false
	}
	return l.s[l.i+1], true
}

func (l *lexer) emit(token Token) {
	token.SpaceBefore = l.spaceBefore
	l.spaceBefore = false
	l.tokens = append(l.tokens, token)
}

func (l *lexer) previousEndsOperand() bool {
	if len(l.tokens) == 0 {
		return false
	}
	return l.tokens[len(l.tokens)-1].Type.endsOperand()
}

func (l *lexer) errorHere(kind LexerErrorKind, char rune) *LexerError {
	start := l.pos()
	end := start
	if l.i < l.len {
		end.Offset++
		end.Column++
	}
	return &LexerError{
		Kind:   kind,
		Char:   char,
		Region: sourcecode.Region{Start: start, End: end},
	}
}

func (l *lexer) tokenize() ([]Token, error) {
	for l.i < l.len {
		r := l.s[l.i]
		start := l.pos()

		switch {
		case unicode.IsSpace(r):
			l.advance()
			l.spaceBefore = true
			continue
		case r == LINE_COMMENT_START:
			if err := l.skipComment(); err != nil {
				return nil, err
			}
			l.spaceBefore = true
			continue
		case r == '"':
			if err := l.scanString(); err != nil {
				return nil, err
			}
			continue
		}

		//two-character operators
		if second, ok := l.peek(); ok {
			if tokenType, ok := doubleCharTokens[r][second]; ok {
				l.advance()
				l.advance()
				l.emit(Token{Type: tokenType, Region: sourcecode.Region{Start: start, End: l.pos()}})
				continue
			}
		}

		//negative integer literals
		if r == '-' && !l.previousEndsOperand() {
			if next, ok := l.peek(); ok && isDecDigit(next) {
				if err := l.scanInt(); err != nil {
					return nil, err
				}
				continue
			}
		}

		if tokenType, ok := singleCharTokens[r]; ok {
			l.advance()
			l.emit(Token{Type: tokenType, Region: sourcecode.Region{Start: start, End: l.pos()}})
			continue
		}

		switch {
		case isDecDigit(r):
			if err := l.scanInt(); err != nil {
				return nil, err
			}
		case isIdentChar(r):
			l.scanIdentifierOrKeyword()
		default:
			//lone '&', '|' and '!' end up here.
			return nil, l.errorHere(UnexpectedCharacter, r)
		}
	}

	end := l.pos()
	l.emit(Token{Type: EOF, Region: sourcecode.Region{Start: end, End: end}})
	return l.tokens, nil
}

func (l *lexer) skipComment() error {
	start := l.pos()

	if next, ok := l.peek(); ok && next == BLOCK_COMMENT_SECOND_RUNE {
		l.advance()
		l.advance()

		for l.i < l.len {
			if l.s[l.i] == ']' {
				if next, ok := l.peek(); ok && next == '#' {
					l.advance()
					l.advance()
					return nil
				}
			}
			l.advance()
		}

		return &LexerError{
			Kind:   UnterminatedComment,
			Char:   LINE_COMMENT_START,
			Region: sourcecode.Region{Start: start, End: l.pos()},
		}
	}

	for l.i < l.len && l.s[l.i] != '\n' {
		l.advance()
	}
	return nil
}

func (l *lexer) scanString() error {
	start := l.pos()
	l.advance() //opening quote

	valueStart := l.i
	for l.i < l.len && l.s[l.i] != '"' {
		l.advance()
	}

	if l.i >= l.len {
		return &LexerError{
			Kind:   UnterminatedString,
			Char:   '"',
			Region: sourcecode.Region{Start: start, End: l.pos()},
		}
	}

	value := string(l.s[valueStart:l.i])
	l.advance() //closing quote

	l.emit(Token{Type: STRING_LITERAL, Raw: value, Region: sourcecode.Region{Start: start, End: l.pos()}})
	return nil
}

func (l *lexer) scanInt() error {
	start := l.pos()

	negative := false
	limit := uint64(math.MaxInt64)

	if l.s[l.i] == '-' {
		negative = true
		limit++
		l.advance()
	}

	var magnitude uint64

	for l.i < l.len && isDecDigit(l.s[l.i]) {
		digit := uint64(l.s[l.i] - '0')
		if magnitude > (limit-digit)/10 {
			return &LexerError{
				Kind:   IntegerOverflow,
				Char:   l.s[l.i],
				Region: sourcecode.Region{Start: start, End: l.pos()},
			}
		}
		magnitude = magnitude*10 + digit
		l.advance()
	}

	//a letter glued to the digits is not part of any valid token.
	if l.i < l.len && isIdentChar(l.s[l.i]) {
		return l.errorHere(NotDigit, l.s[l.i])
	}

	value := int64(magnitude)
	if negative {
		value = int64(-magnitude)
	}

	l.emit(Token{Type: INT_LITERAL, Int: value, Region: sourcecode.Region{Start: start, End: l.pos()}})
	return nil
}

func (l *lexer) scanIdentifierOrKeyword() {
	start := l.pos()
	nameStart := l.i

	for l.i < l.len && isIdentChar(l.s[l.i]) {
		l.advance()
	}

	name := string(l.s[nameStart:l.i])
	region := sourcecode.Region{Start: start, End: l.pos()}

	if keyword, ok := KEYWORDS[name]; ok {
		l.emit(Token{Type: keyword, Region: region})
		return
	}
	l.emit(Token{Type: IDENTIFIER, Raw: name, Region: region})
}

func isDecDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
