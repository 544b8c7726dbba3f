package main

import (
	"fmt"

	"github.com/fatih/color"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Exprs []string `arg:"" optional:"" help:"LISP expressions to parse"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	if len(cmd.Exprs) == 0 {
		return ErrNoExpressions
	}

	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, expr := range cmd.Exprs {
		if err := s.evaluate(expr); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d expression(s)", ErrParseFailed, failed, len(cmd.Exprs))
	}

	if ctx.Verbose {
		color.New(color.FgGreen).Fprintf(ctx.Stderr, "✓ Parsed %d expression(s)\n", len(cmd.Exprs))
	}

	return nil
}
