package miniparc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a zero-based location in the source text.
//
// Line is never incremented by the parsers in this package: all input is
// treated as a single line and Col counts characters (runes) from the start.
type Position struct {
	Line int
	Col  int
}

// Compare orders positions lexicographically by (Line, Col).
// It returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Col < other.Col:
		return -1
	case p.Col > other.Col:
		return 1
	default:
		return 0
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Input is an immutable cursor over the text that is still to be parsed.
type Input struct {
	Position
	Rest string
}

// NewInput creates an Input at line 0, column 0.
func NewInput(src string) Input {
	return Input{Rest: src}
}

// Advance returns a new Input moved forward by count characters.
// Advancing past the end stops at the end.
func (in Input) Advance(count int) Input {
	if count <= 0 {
		return in
	}
	offset := 0
	advanced := 0
	for advanced < count && offset < len(in.Rest) {
		_, size := utf8.DecodeRuneInString(in.Rest[offset:])
		offset += size
		advanced++
	}
	return Input{
		Position: Position{Line: in.Line, Col: in.Col + advanced},
		Rest:     in.Rest[offset:],
	}
}

// Empty reports whether no text remains.
func (in Input) Empty() bool {
	return in.Rest == ""
}

// First returns the first remaining character.
func (in Input) First() (rune, bool) {
	if in.Rest == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(in.Rest)
	return r, true
}

// HasPrefix reports whether the remaining text starts with prefix.
func (in Input) HasPrefix(prefix string) bool {
	return strings.HasPrefix(in.Rest, prefix)
}

// runLength counts the leading characters of the remaining text that satisfy pred
// and returns that count together with the matching text.
func (in Input) runLength(pred func(rune) bool) (int, string) {
	count := 0
	for offset, r := range in.Rest {
		if !pred(r) {
			return count, in.Rest[:offset]
		}
		count++
	}
	return count, in.Rest
}
