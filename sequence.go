package miniparc

// Pair holds the outputs of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Sequence runs First and then Second on the remaining input.
// As a Parser it keeps both outputs; KeepFirst and KeepSecond select one.
type Sequence[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

// AndThen builds the sequence a then b.
//
//	pc.AndThen(pc.WhileOrNothing(unicode.IsSpace), pc.While(unicode.IsLetter)).KeepSecond()
func AndThen[A, B any](a Parser[A], b Parser[B]) *Sequence[A, B] {
	return &Sequence[A, B]{first: a, second: b}
}

// Parse runs both parsers and keeps both outputs. The first failure is
// returned unchanged and the remaining parser is not run.
func (s *Sequence[A, B]) Parse(in Input) (Pair[A, B], Input, error) {
	a, rest, err := s.first.Parse(in)
	if err != nil {
		return fail[Pair[A, B]](err)
	}
	b, rest, err := s.second.Parse(rest)
	if err != nil {
		return fail[Pair[A, B]](err)
	}
	return Pair[A, B]{First: a, Second: b}, rest, nil
}

// KeepBoth returns the sequence as a parser of pairs.
func (s *Sequence[A, B]) KeepBoth() Parser[Pair[A, B]] {
	return s
}

// KeepFirst returns a parser that keeps only the first output.
func (s *Sequence[A, B]) KeepFirst() Parser[A] {
	return Map[Pair[A, B]](s, func(p Pair[A, B]) A { return p.First })
}

// KeepSecond returns a parser that keeps only the second output.
func (s *Sequence[A, B]) KeepSecond() Parser[B] {
	return Map[Pair[A, B]](s, func(p Pair[A, B]) B { return p.Second })
}

// Between parses open, p and close in order and keeps only p's output.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return AndThen(AndThen(open, p).KeepSecond(), close).KeepFirst()
}
