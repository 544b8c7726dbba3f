package miniparc

import (
	"errors"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func TestErrorUnwrapsToKindSentinel(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
	}{
		{PatternNotFound, ErrPatternNotFound},
		{EmptyInput, ErrEmptyInput},
		{MappingFailed, ErrMappingFailed},
		{CustomMessage, ErrCustomMessage},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := NewError(tt.kind, "detail", Position{Col: 2})
			assert.IsError(t, err, tt.sentinel)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, `pattern not found: expected "(" (at 0:4)`,
		NewError(PatternNotFound, `expected "("`, Position{Col: 4}).Error())
	assert.Equal(t, "cannot parse an empty input (at 0:0)",
		NewError(EmptyInput, "", Position{}).Error())
	assert.Equal(t, "missing closing parenthesis",
		NewError(CustomMessage, "missing closing parenthesis", Position{Col: 9}).Message())
}

func TestFurthest(t *testing.T) {
	near := NewError(PatternNotFound, "near", Position{Col: 1})
	far := NewError(PatternNotFound, "far", Position{Col: 5})
	tie := NewError(PatternNotFound, "tie", Position{Col: 1})
	plain := errors.New("plain")

	assert.Equal(t, error(far), Furthest(near, far))
	assert.Equal(t, error(far), Furthest(far, near))
	assert.Equal(t, error(near), Furthest(near, tie), "ties keep the first operand")
	assert.Equal(t, error(near), Furthest(plain, near))
	assert.Equal(t, error(near), Furthest(near, plain))
	assert.Equal(t, plain, Furthest(plain, errors.New("other")))
}

func TestAsError(t *testing.T) {
	perr := NewError(MappingFailed, "x", Position{Col: 3})

	got, ok := AsError(perr)
	assert.True(t, ok)
	assert.Equal(t, perr, got)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}
