package main

import "errors"

var (
	// ErrParseFailed is returned by the parse command when any expression fails.
	ErrParseFailed = errors.New("parse failed")
	// ErrNoExpressions is returned when the parse command gets no arguments.
	ErrNoExpressions = errors.New("no expressions given")
)
