package miniparc

// Repetition runs a parser repeatedly and collects the outputs.
// Build one with Repeat; Min and Max return adjusted copies.
type Repetition[T any] struct {
	parser  Parser[T]
	lower   int
	upper   int
	bounded bool
}

// Repeat runs p at least once with no upper limit.
func Repeat[T any](p Parser[T]) Repetition[T] {
	return Repetition[T]{parser: p, lower: 1}
}

// Min sets how many times the parser must succeed.
func (r Repetition[T]) Min(n int) Repetition[T] {
	r.lower = max(n, 0)
	return r
}

// Max sets how many times the parser may run at most.
func (r Repetition[T]) Max(n int) Repetition[T] {
	r.upper = max(n, 0)
	r.bounded = true
	return r
}

// Parse runs the loop. The failure that ends the loop is discarded; the
// parse only fails when fewer than Min outputs were collected. An iteration
// that consumes nothing ends the loop after its output is recorded.
func (r Repetition[T]) Parse(in Input) ([]T, Input, error) {
	rest := in
	acc := []T{}
	for !r.bounded || len(acc) < r.upper {
		out, next, err := r.parser.Parse(rest)
		if err != nil {
			break
		}
		acc = append(acc, out)
		progressed := next.Position != rest.Position
		rest = next
		if !progressed {
			break
		}
	}

	if len(acc) < r.lower {
		return fail[[]T](patternNotFound(rest.Position,
			"parser did not run the minimum number of times (%d of %d)", len(acc), r.lower))
	}
	return acc, rest, nil
}

// Optional runs p at most once. The result holds zero or one output.
func Optional[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p).Min(0).Max(1)
}
