package miniparc

// Map converts the output of p with f. It fails only when p fails.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return ParserFunc[U](func(in Input) (U, Input, error) {
		out, rest, err := p.Parse(in)
		if err != nil {
			return fail[U](err)
		}
		return f(out), rest, nil
	})
}

// TryMap converts the output of p with f, which may reject it by returning
// false. A rejection is a MappingFailed error positioned after the text p
// consumed.
func TryMap[T, U any](p Parser[T], f func(T) (U, bool)) Parser[U] {
	return ParserFunc[U](func(in Input) (U, Input, error) {
		out, rest, err := p.Parse(in)
		if err != nil {
			return fail[U](err)
		}
		mapped, ok := f(out)
		if !ok {
			return fail[U](NewError(MappingFailed, "mapping rejected the parsed value", rest.Position))
		}
		return mapped, rest, nil
	})
}

// Value replaces the output of p with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}
