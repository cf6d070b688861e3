package sourcecode

// A Counter tracks the line and column of a rune index while a source is scanned
// from left to right.
type Counter struct {
	pos Position
}

func NewCounter() *Counter {
	return &Counter{pos: Position{Offset: 0, Line: 1, Column: 1}}
}

func (c *Counter) Position() Position {
	return c.pos
}

// Advance moves the counter past r.
func (c *Counter) Advance(r rune) {
	c.pos.Offset++
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
}

// PositionOf computes the position of the rune at index i by counting lines from the start of runes.
func PositionOf(runes []rune, i int32) Position {
	line := int32(1)
	col := int32(1)

	for j := int32(0); j < i && j < int32(len(runes)); j++ {
		if runes[j] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return Position{Offset: i, Line: line, Column: col}
}

// GetLine returns the text of the line containing the rune at index i, without the newline,
// and the index of i in that line.
func GetLine(runes []rune, i int32) (line string, indexInLine int32) {
	if i > int32(len(runes)) {
		i = int32(len(runes))
	}

	start := i
	for start > 0 && runes[start-1] != '\n' {
		start--
	}

	end := i
	for end < int32(len(runes)) && runes[end] != '\n' {
		end++
	}

	return string(runes[start:end]), i - start
}
