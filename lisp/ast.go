package lisp

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expression is either a Primitive or a Compound.
type Expression interface {
	String() string
	isExpression()
}

// Primitive is a literal value: Bool, Str or Number.
type Primitive interface {
	Expression
	isPrimitive()
}

// Bool is true or false.
type Bool bool

// Str is the raw text of a double-quoted string; escapes are kept as written.
type Str string

// Number is an exact decimal literal.
type Number struct {
	Value decimal.Decimal
}

// Compound is a parenthesized application: (ident params...).
type Compound struct {
	Ident  string
	Params []Expression
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (s Str) String() string {
	return `"` + string(s) + `"`
}

func (n Number) String() string {
	return n.Value.String()
}

func (c Compound) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(c.Ident)
	for _, p := range c.Params {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	b.WriteString(")")
	return b.String()
}

func (Bool) isExpression()     {}
func (Str) isExpression()      {}
func (Number) isExpression()   {}
func (Compound) isExpression() {}

func (Bool) isPrimitive()   {}
func (Str) isPrimitive()    {}
func (Number) isPrimitive() {}

// Statement is an expression followed by whatever text the grammar did not consume.
type Statement struct {
	Expr     Expression
	Trailing string
}
