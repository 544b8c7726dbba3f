package miniparc

// Driver binds a root parser to the complete source text.
type Driver[T any] struct {
	source string
	root   Parser[T]
}

// NewDriver creates a Driver for source and root.
func NewDriver[T any](source string, root Parser[T]) *Driver[T] {
	return &Driver[T]{source: source, root: root}
}

// Source returns the bound source text.
func (d *Driver[T]) Source() string {
	return d.source
}

// Parse runs the root parser over the whole source.
//
// Unconsumed trailing input is not an error here; grammars that need full
// consumption end with End(). On failure the error is a *Diagnostic.
func (d *Driver[T]) Parse() (T, error) {
	return d.ParseInput(NewInput(d.source))
}

// ParseInput runs the root parser on in, which must be a position inside the
// bound source. Failures are reported as a *Diagnostic over the bound source.
func (d *Driver[T]) ParseInput(in Input) (T, error) {
	out, _, err := d.root.Parse(in)
	if err != nil {
		var zero T
		return zero, newDiagnostic(d.source, err)
	}
	return out, nil
}
