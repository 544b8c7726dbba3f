package miniparc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Diagnostic is a parsing failure anchored in the full source text.
// Only a Driver builds one; see the diagnostic package for rendering.
type Diagnostic struct {
	Source string
	Position
	Cause error
}

func newDiagnostic(source string, cause error) *Diagnostic {
	d := &Diagnostic{Source: source, Cause: cause}
	if perr, ok := AsError(cause); ok {
		d.Position = perr.Position
	}
	return d
}

func (d *Diagnostic) Error() string {
	loc := d.Location()
	return fmt.Sprintf("error during parsing at %d:%d: %s", loc.Line, loc.Column, d.Message())
}

// Unwrap returns the underlying parsing error.
func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// Message returns the cause's message without position information.
func (d *Diagnostic) Message() string {
	if perr, ok := AsError(d.Cause); ok {
		return perr.Message()
	}
	if d.Cause == nil {
		return "unknown error"
	}
	return d.Cause.Error()
}

// Location is a Diagnostic position resolved against the source text.
type Location struct {
	// Offset counts characters from the start of the source.
	Offset int
	// ByteOffset is Offset in bytes.
	ByteOffset int
	// Line and Column are 1-based.
	Line   int
	Column int
	// LineText is the source line containing the position, without its line break.
	LineText string
}

// Location resolves the error position inside Source.
//
// Parsers never advance the line, so Col is a character count from the start
// of line Line; newlines crossed while counting move the location down.
// Positions past the end resolve to the end of the source.
func (d *Diagnostic) Location() Location {
	src := d.Source
	lineStart := 0
	line := 0
	for line < d.Line {
		i := strings.IndexByte(src[lineStart:], '\n')
		if i < 0 {
			break
		}
		lineStart += i + 1
		line++
	}

	offset := utf8.RuneCountInString(src[:lineStart])
	pos := lineStart
	col := 0
	for remaining := d.Col; remaining > 0 && pos < len(src); remaining-- {
		r, size := utf8.DecodeRuneInString(src[pos:])
		pos += size
		offset++
		if r == '\n' {
			line++
			lineStart = pos
			col = 0
			continue
		}
		if r == '\r' && strings.HasPrefix(src[pos:], "\n") {
			continue
		}
		col++
	}

	text := src[lineStart:]
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return Location{
		Offset:     offset,
		ByteOffset: pos,
		Line:       line + 1,
		Column:     col + 1,
		LineText:   strings.TrimSuffix(text, "\r"),
	}
}
