package sourcecode

import "fmt"

// A Position is a location in a source text.
type Position struct {
	Offset int32 `json:"offset"` //rune index, 0-indexed
	Line   int32 `json:"line"`   //1-indexed
	Column int32 `json:"column"` //1-indexed
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Region is a range of source text, End is exclusive.
type Region struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Span returns a region ranging from the start of r to the end of other.
func (r Region) Span(other Region) Region {
	return Region{Start: r.Start, End: other.End}
}

func (r Region) Len() int32 {
	return r.End.Offset - r.Start.Offset
}

func (r Region) String() string {
	return r.Start.String()
}

// A LocatedError is an error that knows which region of the source text caused it.
type LocatedError interface {
	error
	MessageWithoutLocation() string
	LocationRegion() Region
}
