// Package miniparc is a small parser combinator toolkit.
//
// A grammar is built by composing parser values:
//
//	ws := pc.WhileOrNothing(unicode.IsSpace)
//	word := pc.While(unicode.IsLetter)
//	words := pc.Repeat(pc.AndThen(ws, word).KeepSecond())
//
//	out, rest, err := words.Parse(pc.NewInput("hello there"))
//
// Building a parser never reads input; only Parse does. Parser values carry no
// mutable state, so a composed grammar can be shared and invoked any number of
// times, from any number of goroutines.
package miniparc

import "sync"

// Parser is the single capability every parsing unit provides.
//
// On success Parse returns the output and the Input left after the matched
// text. On failure it returns the zero output, the zero Input and an error
// (normally an *Error) positioned no further than the end of in.
type Parser[T any] interface {
	Parse(in Input) (T, Input, error)
}

// ParserFunc adapts an ordinary function into a Parser.
type ParserFunc[T any] func(in Input) (T, Input, error)

// Parse calls f(in).
func (f ParserFunc[T]) Parse(in Input) (T, Input, error) {
	return f(in)
}

// ParseString runs p against src starting at line 0, column 0.
func ParseString[T any](p Parser[T], src string) (T, Input, error) {
	return p.Parse(NewInput(src))
}

// Lazy defers building a parser until it is first used.
// Recursive grammars use it to refer to themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return ParserFunc[T](func(in Input) (T, Input, error) {
		return get().Parse(in)
	})
}

func fail[T any](err error) (T, Input, error) {
	var zero T
	return zero, Input{}, err
}
