package miniparc

// Or tries a, and b when a fails, both on the same input.
//
// A successful a always wins. When both fail, the error that progressed
// further into the input is returned; on equal positions a's error is kept.
func Or[T any](a, b Parser[T]) Parser[T] {
	return ParserFunc[T](func(in Input) (T, Input, error) {
		out, rest, aerr := a.Parse(in)
		if aerr == nil {
			return out, rest, nil
		}
		out, rest, berr := b.Parse(in)
		if berr == nil {
			return out, rest, nil
		}
		return fail[T](Furthest(aerr, berr))
	})
}

// Choice combines parsers with Or from left to right.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		panic("miniparc: Choice requires at least one parser")
	}
	p := parsers[0]
	for _, next := range parsers[1:] {
		p = Or(p, next)
	}
	return p
}
