package miniparc

import (
	"strconv"
	"unicode/utf8"
)

// Match parses the exact literal lit.
//
//	out, rest, _ := pc.ParseString(pc.Match("if"), "if and")
//	// out == "if", rest.Rest == " and"
func Match(lit string) Parser[string] {
	length := utf8.RuneCountInString(lit)
	return ParserFunc[string](func(in Input) (string, Input, error) {
		if !in.HasPrefix(lit) {
			return fail[string](patternNotFound(in.Position, "expected %s", strconv.Quote(lit)))
		}
		return lit, in.Advance(length), nil
	})
}

// If parses a single character satisfying pred.
func If(pred func(rune) bool) Parser[rune] {
	return ParserFunc[rune](func(in Input) (rune, Input, error) {
		r, ok := in.First()
		if !ok {
			return fail[rune](patternNotFound(in.Position, "predicate not met: end of input"))
		}
		if !pred(r) {
			return fail[rune](patternNotFound(in.Position, "predicate not met by %s", strconv.QuoteRune(r)))
		}
		return r, in.Advance(1), nil
	})
}

// While parses the longest run of characters satisfying pred.
// At least one character must match.
func While(pred func(rune) bool) Parser[string] {
	return ParserFunc[string](func(in Input) (string, Input, error) {
		count, taken := in.runLength(pred)
		if count == 0 {
			return fail[string](patternNotFound(in.Position, "no characters matched predicate"))
		}
		return taken, in.Advance(count), nil
	})
}

// WhileOrNothing parses the longest run of characters satisfying pred.
// It never fails: when nothing matches it returns "" and consumes nothing.
func WhileOrNothing(pred func(rune) bool) Parser[string] {
	return ParserFunc[string](func(in Input) (string, Input, error) {
		count, taken := in.runLength(pred)
		return taken, in.Advance(count), nil
	})
}

// Any parses one character of any kind.
func Any() Parser[rune] {
	return ParserFunc[rune](func(in Input) (rune, Input, error) {
		r, ok := in.First()
		if !ok {
			return fail[rune](NewError(EmptyInput, "", in.Position))
		}
		return r, in.Advance(1), nil
	})
}

// End succeeds only when no input remains.
func End() Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) (struct{}, Input, error) {
		if r, ok := in.First(); ok {
			return fail[struct{}](patternNotFound(in.Position, "expected end of input, found %s", strconv.QuoteRune(r)))
		}
		return struct{}{}, in, nil
	})
}
