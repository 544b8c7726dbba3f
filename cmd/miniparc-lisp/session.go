package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	pc "github.com/shibukawa/miniparc"
	"github.com/shibukawa/miniparc/diagnostic"
	"github.com/shibukawa/miniparc/lisp"
)

// session parses lines with one grammar and prints results and diagnostics.
type session struct {
	config  *Config
	grammar *lisp.Grammar
	opts    diagnostic.Options
	out     io.Writer
	errOut  io.Writer
	verbose bool
	quiet   bool
}

func newSession(ctx *Context) (*session, error) {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyColorMode(config.Color, ctx.NoColor)

	var tracer *pc.Tracer
	if ctx.Trace || config.Trace {
		tracer = pc.NewTracer(ctx.Stderr)
	}

	s := &session{
		config: config,
		grammar: lisp.New(lisp.Options{
			Whitespace: config.Whitespace,
			Tracer:     tracer,
		}),
		opts: diagnostic.Options{
			Title:    config.Diagnostic.Title,
			Label:    config.Diagnostic.Label,
			Help:     config.Diagnostic.Help,
			MaxWidth: config.Diagnostic.MaxWidth,
			Color:    !color.NoColor,
		},
		out:     ctx.Stdout,
		errOut:  ctx.Stderr,
		verbose: ctx.Verbose,
		quiet:   ctx.Quiet,
	}

	if s.verbose {
		color.New(color.FgBlue).Fprintf(s.errOut, "Using whitespace %q, exit command %q\n", config.Whitespace, config.ExitCommand)
	}

	return s, nil
}

// applyColorMode sets the global color switch. --no-color wins over the config.
func applyColorMode(mode string, noColor bool) {
	switch {
	case noColor || mode == ColorNever:
		color.NoColor = true
	case mode == ColorAlways:
		color.NoColor = false
	}
}

// evaluate parses one line. Parse failures are rendered and returned.
func (s *session) evaluate(line string) error {
	driver := pc.NewDriver(line, s.grammar.Statement())

	stmt, err := driver.Parse()
	if err != nil {
		var d *pc.Diagnostic
		if errors.As(err, &d) {
			if rerr := diagnostic.Render(s.errOut, d, s.opts); rerr != nil {
				return fmt.Errorf("failed to render diagnostic: %w", rerr)
			}
		}
		return err
	}

	if !s.quiet {
		fmt.Fprintln(s.out, stmt.Expr.String())
	}

	if trailing := strings.TrimRight(stmt.Trailing, "\r\n"); trailing != "" {
		color.New(color.FgYellow).Fprintf(s.errOut, "Warning: ignored trailing input %q\n", trailing)
	}

	return nil
}
