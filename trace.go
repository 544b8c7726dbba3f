package miniparc

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

var (
	traceEnterFmt = color.New(color.FgBlue).SprintfFunc()
	traceMatchFmt = color.New(color.FgGreen).SprintfFunc()
	traceFailFmt  = color.New(color.FgRed).SprintfFunc()
)

// Tracer receives the events reported by Trace parsers.
// Writes are serialised so lines from concurrent parses never interleave.
type Tracer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTracer creates a Tracer writing one line per event to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

func (t *Tracer) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, fmt.Sprintf(format, args...))
}

// Trace reports when p is entered, matches or fails. A nil tracer returns p.
func Trace[T any](name string, p Parser[T], tracer *Tracer) Parser[T] {
	if tracer == nil {
		return p
	}
	return ParserFunc[T](func(in Input) (T, Input, error) {
		tracer.printf("%s %s at %s: %s", traceEnterFmt("enter"), name, in.Position, preview(in.Rest))
		out, rest, err := p.Parse(in)
		if err != nil {
			tracer.printf("%s %s: %v", traceFailFmt("fail"), name, err)
			return fail[T](err)
		}
		tracer.printf("%s %s %s..%s", traceMatchFmt("match"), name, in.Position, rest.Position)
		return out, rest, nil
	})
}

func preview(s string) string {
	const limit = 16
	count := 0
	for offset := range s {
		if count == limit {
			return strconv.Quote(s[:offset]) + "..."
		}
		count++
	}
	return strconv.Quote(s)
}
