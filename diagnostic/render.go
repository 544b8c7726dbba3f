// Package diagnostic renders miniparc diagnostics as annotated source
// excerpts:
//
//	error: Error during parsing
//	  --> 1:9
//	   |
//	 1 | (add 2 1
//	   |         ^ Parsing Error Here
//	   |
//	   = cause: missing closing parenthesis
//	   = help: try doing it better next time?
package diagnostic

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/shibukawa/miniparc"
)

const ellipsis = "..."

// MinWidth is the smallest usable Options.MaxWidth: an ellipsis on both sides
// of one wide character.
const MinWidth = 2*len(ellipsis) + 2

// Options controls the rendered text.
type Options struct {
	Title string
	Label string
	Help  string
	// MaxWidth limits the displayed source line in terminal cells. 0 means
	// unlimited; positive values below MinWidth are raised to MinWidth.
	MaxWidth int
	Color    bool
}

// DefaultOptions returns the standard wording with colors disabled.
func DefaultOptions() Options {
	return Options{
		Title: "Error during parsing",
		Label: "Parsing Error Here",
		Help:  "try doing it better next time?",
	}
}

type palette struct {
	severity *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		severity: color.New(color.FgRed, color.Bold),
		gutter:   color.New(color.FgBlue, color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
		note:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.severity, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render writes the annotated diagnostic to w.
func Render(w io.Writer, d *miniparc.Diagnostic, opts Options) error {
	loc := d.Location()
	pal := newPalette(opts.Color)

	lineNo := strconv.Itoa(loc.Line)
	indent := strings.Repeat(" ", len(lineNo))
	bar := pal.gutter.Sprint("|")

	text, caret := window(loc.LineText, loc.Column-1, opts.MaxWidth)

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s: %s\n", pal.severity.Sprint("error"), opts.Title)
	fmt.Fprintf(&b, "%s%s %d:%d\n", indent, pal.gutter.Sprint("-->"), loc.Line, loc.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, bar)
	fmt.Fprintf(&b, "%s %s %s\n", pal.gutter.Sprint(lineNo), bar, text)
	fmt.Fprintf(&b, "%s %s %s%s\n", indent, bar, caretPadding(text, caret), pal.caret.Sprint(strings.TrimSpace("^ "+opts.Label)))
	fmt.Fprintf(&b, "%s %s\n", indent, bar)
	fmt.Fprintf(&b, "%s %s cause: %s\n", indent, pal.note.Sprint("="), d.Message())
	if opts.Help != "" {
		fmt.Fprintf(&b, "%s %s help: %s\n", indent, pal.note.Sprint("="), opts.Help)
	}

	_, err := w.Write(b.Bytes())
	return err
}

// Sprint renders the diagnostic into a string.
func Sprint(d *miniparc.Diagnostic, opts Options) string {
	var b strings.Builder
	_ = Render(&b, d, opts)
	return b.String()
}

// measure fixes the width rules so output does not depend on the locale.
var measure = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// cellWidth is the number of terminal cells r occupies.
func cellWidth(r rune) int {
	return measure.RuneWidth(r)
}

// caretPadding returns the blanks that move the caret under the character at
// rune index caret. Tabs are copied so the terminal expands them identically.
func caretPadding(text string, caret int) string {
	var b strings.Builder
	i := 0
	for _, r := range text {
		if i == caret {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth(r)))
		}
		i++
	}
	return b.String()
}

// compose converts text to NFC so a base character and its combining marks
// stay one rune. Both sides of the caret are composed separately to keep the
// caret on the same character.
func compose(text string, caret int) (string, int) {
	runes := []rune(text)
	caret = min(max(caret, 0), len(runes))
	before := norm.NFC.String(string(runes[:caret]))
	after := norm.NFC.String(string(runes[caret:]))
	return before + after, utf8.RuneCountInString(before)
}

// window shortens text to maxWidth cells while keeping the caret's character
// visible. Widths below MinWidth are raised to MinWidth. It returns the
// shortened text and the caret's rune index inside it.
func window(text string, caret, maxWidth int) (string, int) {
	text, caret = compose(text, caret)
	runes := []rune(text)

	// A caret past the end still needs a cell.
	caretCell := 0
	if caret == len(runes) {
		caretCell = 1
	}
	if maxWidth <= 0 || cells(runes)+caretCell <= maxWidth {
		return text, caret
	}
	maxWidth = max(maxWidth, MinWidth)

	width := func(start, end int) int {
		w := cells(runes[start:end]) + caretCell
		if start > 0 {
			w += len(ellipsis)
		}
		if end < len(runes) {
			w += len(ellipsis)
		}
		return w
	}

	start, end := caret, min(caret+1, len(runes))
	half := (maxWidth - 2*len(ellipsis)) / 2
	for start > 0 && cells(runes[start-1:caret]) <= half && width(start-1, end) <= maxWidth {
		start--
	}
	for end < len(runes) && width(start, end+1) <= maxWidth {
		end++
	}
	for start > 0 && width(start-1, end) <= maxWidth {
		start--
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(string(runes[start:end]))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	if start > 0 {
		return b.String(), caret - start + len(ellipsis)
	}
	return b.String(), caret
}

func cells(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += cellWidth(r)
	}
	return n
}
