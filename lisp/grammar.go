// Package lisp is a toy LISP-like expression grammar built with miniparc.
//
//	expression := blanks (primitive | compound)
//	compound   := "(" blanks ident expression* blanks ")"
//	primitive  := "true" | "false" | number | string
package lisp

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	pc "github.com/shibukawa/miniparc"
)

// DefaultWhitespace are the characters skipped between tokens.
const DefaultWhitespace = " \t"

// Options configures a Grammar.
type Options struct {
	// Whitespace lists the blank characters. Empty means DefaultWhitespace.
	Whitespace string
	// Tracer receives parser events when set.
	Tracer *pc.Tracer
}

// Grammar holds the parsers of the LISP dialect.
type Grammar struct {
	whitespace string
	tracer     *pc.Tracer
	expr       pc.Parser[Expression]
}

// New builds a Grammar. Building does not parse anything.
func New(opts Options) *Grammar {
	g := &Grammar{
		whitespace: opts.Whitespace,
		tracer:     opts.Tracer,
	}
	if g.whitespace == "" {
		g.whitespace = DefaultWhitespace
	}
	g.expr = pc.Lazy(g.expression)
	return g
}

func (g *Grammar) isBlank(r rune) bool {
	return strings.ContainsRune(g.whitespace, r)
}

func (g *Grammar) blanks() pc.Parser[string] {
	return pc.WhileOrNothing(g.isBlank)
}

func (g *Grammar) token(lit string) pc.Parser[string] {
	return pc.AndThen(g.blanks(), pc.Match(lit)).KeepSecond()
}

// Bool parses true or false.
func (g *Grammar) Bool() pc.Parser[Primitive] {
	return pc.Trace("bool", pc.Or(
		pc.Value[string, Primitive](pc.Match("true"), Bool(true)),
		pc.Value[string, Primitive](pc.Match("false"), Bool(false)),
	), g.tracer)
}

// Number parses an optionally negative integer or decimal such as 12, -3 or 2.50.
func (g *Grammar) Number() pc.Parser[Primitive] {
	sign := pc.Map(pc.Optional(pc.Match("-")), func(s []string) string {
		return strings.Join(s, "")
	})
	digits := pc.While(unicode.IsDigit)
	fraction := pc.Map(
		pc.AndThen(pc.AndThen(digits, pc.Match(".")).KeepFirst(), pc.WhileOrNothing(unicode.IsDigit)).KeepBoth(),
		func(p pc.Pair[string, string]) string {
			return p.First + "." + p.Second
		})
	literal := pc.Map(
		pc.AndThen(sign, pc.Or(fraction, digits)).KeepBoth(),
		func(p pc.Pair[string, string]) string {
			return p.First + p.Second
		})

	return pc.Trace("number", pc.TryMap(literal, func(s string) (Primitive, bool) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, false
		}
		return Number{Value: d}, true
	}), g.tracer)
}

// Str parses a double-quoted string.
func (g *Grammar) Str() pc.Parser[Primitive] {
	return pc.Trace("string", pc.Map(pc.QuotedString(), func(s string) Primitive {
		return Str(s)
	}), g.tracer)
}

// Primitive parses any literal.
func (g *Grammar) Primitive() pc.Parser[Primitive] {
	return pc.Choice(g.Bool(), g.Number(), g.Str())
}

// Compound parses (ident expression*).
func (g *Grammar) Compound() pc.Parser[Expression] {
	ident := pc.AndThen(g.blanks(), pc.While(unicode.IsLetter)).KeepSecond()
	var params pc.Parser[[]Expression] = pc.Repeat(g.expr).Min(0)
	closing := pc.WithError(g.token(")"), "missing closing parenthesis")

	body := pc.AndThen(ident, params).KeepBoth()
	return pc.Trace("compound", pc.Map(pc.Between(g.token("("), body, closing),
		func(p pc.Pair[string, []Expression]) Expression {
			return Compound{Ident: p.First, Params: p.Second}
		}), g.tracer)
}

func (g *Grammar) expression() pc.Parser[Expression] {
	prim := pc.Map(g.Primitive(), func(p Primitive) Expression { return p })
	return pc.Trace("expression", pc.AndThen(g.blanks(), pc.Or(prim, g.Compound())).KeepSecond(), g.tracer)
}

// Expression parses one expression and leaves any trailing text unconsumed.
func (g *Grammar) Expression() pc.Parser[Expression] {
	return g.expr
}

// Line parses one expression that must be followed only by blanks.
func (g *Grammar) Line() pc.Parser[Expression] {
	return pc.AndThen(g.expr, pc.AndThen(g.blanks(), pc.End()).KeepSecond()).KeepFirst()
}

// Statement parses one expression and reports the unparsed remainder.
func (g *Grammar) Statement() pc.Parser[Statement] {
	anything := pc.WhileOrNothing(func(rune) bool { return true })
	trailing := pc.AndThen(g.blanks(), anything).KeepSecond()
	return pc.Map(pc.AndThen(g.expr, trailing).KeepBoth(), func(p pc.Pair[Expression, string]) Statement {
		return Statement{Expr: p.First, Trailing: p.Second}
	})
}
