package miniparc

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per ErrorKind. *Error unwraps to the sentinel of its kind.
var (
	// ErrPatternNotFound indicates the expected token or pattern was absent.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrEmptyInput indicates content was required but the input was empty.
	ErrEmptyInput = errors.New("cannot parse an empty input")
	// ErrMappingFailed indicates parsing worked but the output could not be mapped.
	ErrMappingFailed = errors.New("parsing worked, but mapping failed")
	// ErrCustomMessage marks errors whose message was supplied by the grammar author.
	ErrCustomMessage = errors.New("custom error")
)

// ErrorKind classifies a parsing failure.
type ErrorKind int

const (
	// PatternNotFound is a structural mismatch.
	PatternNotFound ErrorKind = iota
	// EmptyInput is a zero-length input presented where content was required.
	EmptyInput
	// MappingFailed is a syntactic success rejected by an output transformation.
	MappingFailed
	// CustomMessage carries a message supplied through WithError.
	CustomMessage
)

func (k ErrorKind) String() string {
	switch k {
	case PatternNotFound:
		return "PatternNotFound"
	case EmptyInput:
		return "EmptyInput"
	case MappingFailed:
		return "MappingFailed"
	case CustomMessage:
		return "CustomMessage"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case EmptyInput:
		return ErrEmptyInput
	case MappingFailed:
		return ErrMappingFailed
	case CustomMessage:
		return ErrCustomMessage
	default:
		return ErrPatternNotFound
	}
}

// Error is a positioned parsing failure.
type Error struct {
	Kind ErrorKind
	// Detail is the pattern description, mapping detail or custom text.
	Detail string
	Position
}

// NewError creates an Error of the given kind at pos.
func NewError(kind ErrorKind, detail string, pos Position) *Error {
	return &Error{Kind: kind, Detail: detail, Position: pos}
}

func patternNotFound(pos Position, format string, args ...any) *Error {
	return NewError(PatternNotFound, fmt.Sprintf(format, args...), pos)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Message(), e.Position)
}

// Message returns the error text without the position.
func (e *Error) Message() string {
	switch {
	case e.Kind == CustomMessage:
		return e.Detail
	case e.Detail == "":
		return e.Kind.sentinel().Error()
	default:
		return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Detail)
	}
}

// Unwrap returns the sentinel error matching the kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// AsError extracts a positioned *Error from err.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// Furthest returns whichever of a and b progressed further into the input.
// On a tie a wins. Errors that are not *Error rank below any positioned error.
func Furthest(a, b error) error {
	pa, aok := AsError(a)
	pb, bok := AsError(b)
	switch {
	case !bok:
		return a
	case !aok:
		return b
	case pb.Position.Compare(pa.Position) > 0:
		return b
	default:
		return a
	}
}
