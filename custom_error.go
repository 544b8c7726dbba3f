package miniparc

// WithError replaces any failure of p with a CustomMessage error carrying
// message. The position of the original failure is kept; failures without a
// position are reported where p started.
func WithError[T any](p Parser[T], message string) Parser[T] {
	return ParserFunc[T](func(in Input) (T, Input, error) {
		out, rest, err := p.Parse(in)
		if err == nil {
			return out, rest, nil
		}
		pos := in.Position
		if perr, ok := AsError(err); ok {
			pos = perr.Position
		}
		return fail[T](NewError(CustomMessage, message, pos))
	})
}
