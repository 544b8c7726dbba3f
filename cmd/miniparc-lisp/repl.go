package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ReplCmd represents the interactive read-parse-print loop
type ReplCmd struct{}

// Run executes the repl command
func (cmd *ReplCmd) Run(ctx *Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(ctx.Stdin)
	failures := 0
	lines := 0

	for {
		if !ctx.Quiet {
			fmt.Fprintln(ctx.Stdout, s.config.Prompt)
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == s.config.ExitCommand {
			break
		}

		lines++
		if err := s.evaluate(line); err != nil {
			failures++
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Stderr, "Parsed %d line(s), %d failed\n", lines, failures)
	}

	return nil
}
