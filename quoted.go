package miniparc

const (
	quoteChar  = '"'
	escapeChar = '\\'
)

// QuotedString parses a double-quoted string literal and returns the raw text
// between the quotes.
//
// A backslash and the character after it form an escape pair: the pair never
// terminates the string and is returned as written. Every character,
// including both characters of an escape pair and both quotes, advances the
// column by one, so `"a\"b"` consumes 6 characters.
func QuotedString() Parser[string] {
	return ParserFunc[string](func(in Input) (string, Input, error) {
		if r, ok := in.First(); !ok || r != quoteChar {
			return fail[string](patternNotFound(in.Position, "expected opening quote %q", quoteChar))
		}
		body := in.Advance(1)

		consumed := 1 // opening quote
		escaped := false
		for offset, r := range body.Rest {
			consumed++
			switch {
			case escaped:
				escaped = false
			case r == escapeChar:
				escaped = true
			case r == quoteChar:
				return body.Rest[:offset], in.Advance(consumed), nil
			}
		}
		return fail[string](patternNotFound(body.Position, "did not find closing quote %q", quoteChar))
	})
}
