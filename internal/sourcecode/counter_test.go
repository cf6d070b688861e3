package sourcecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, c.Position())

	for _, r := range "ab\nc" {
		c.Advance(r)
	}
	assert.Equal(t, Position{Offset: 4, Line: 2, Column: 2}, c.Position())
}

func TestPositionOf(t *testing.T) {
	runes := []rune("a\nbc\n\nd")

	testCases := []struct {
		index    int32
		expected Position
	}{
		{0, Position{0, 1, 1}},
		{1, Position{1, 1, 2}},
		{2, Position{2, 2, 1}},
		{3, Position{3, 2, 2}},
		{6, Position{6, 4, 1}},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, PositionOf(runes, testCase.index))
	}
}

func TestGetLine(t *testing.T) {
	runes := []rune("var a = 1\nprintLn(b)\n")

	line, index := GetLine(runes, 18)
	assert.Equal(t, "printLn(b)", line)
	assert.Equal(t, int32(8), index)

	line, index = GetLine(runes, 0)
	assert.Equal(t, "var a = 1", line)
	assert.Equal(t, int32(0), index)

	line, index = GetLine(runes, int32(len(runes)))
	assert.Equal(t, "", line)
	assert.Equal(t, int32(0), index)
}

func TestRegion(t *testing.T) {
	a := Region{Start: Position{0, 1, 1}, End: Position{2, 1, 3}}
	b := Region{Start: Position{4, 1, 5}, End: Position{7, 1, 8}}

	span := a.Span(b)
	assert.Equal(t, a.Start, span.Start)
	assert.Equal(t, b.End, span.End)
	assert.Equal(t, int32(7), span.Len())
	assert.Equal(t, "1:1", span.String())
}
