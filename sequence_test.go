package miniparc

import (
	"errors"
	"testing"
	"unicode"

	"github.com/alecthomas/assert/v2"
)

func TestAndThenKeepSecond(t *testing.T) {
	ws := WhileOrNothing(unicode.IsSpace)
	letters := While(unicode.IsLetter)
	p := AndThen(ws, letters).KeepSecond()

	for _, src := range []string{" hello", "hello"} {
		t.Run(src, func(t *testing.T) {
			out, rest, err := ParseString(p, src)
			assert.NoError(t, err)
			assert.Equal(t, "hello", out)
			assert.True(t, rest.Empty())
		})
	}
}

func TestAndThenKeepFirstAndBoth(t *testing.T) {
	seq := AndThen(While(unicode.IsDigit), Match("."))

	first, rest, err := ParseString(seq.KeepFirst(), "12.5")
	assert.NoError(t, err)
	assert.Equal(t, "12", first)
	assert.Equal(t, "5", rest.Rest)

	both, rest, err := ParseString(seq.KeepBoth(), "12.5")
	assert.NoError(t, err)
	assert.Equal(t, Pair[string, string]{First: "12", Second: "."}, both)
	assert.Equal(t, 3, rest.Col)
}

func TestAndThenStopsAtFirstFailure(t *testing.T) {
	ran := false
	second := ParserFunc[string](func(in Input) (string, Input, error) {
		ran = true
		return "", in, nil
	})

	_, rest, err := ParseString(AndThen(Match("a"), second).KeepBoth(), "b")
	assert.IsError(t, err, ErrPatternNotFound)
	assert.Equal(t, Input{}, rest)
	assert.False(t, ran)
}

func TestAndThenPropagatesSecondFailureUnchanged(t *testing.T) {
	want := errors.New("boom")
	second := ParserFunc[string](func(Input) (string, Input, error) {
		return "", Input{}, want
	})

	_, _, err := ParseString(AndThen(Match("a"), second).KeepFirst(), "ab")
	assert.Equal(t, want, err)

	_, _, err = ParseString(AndThen(Match("a"), Match("c")).KeepFirst(), "ab")
	perr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, 1, perr.Col)
}

func TestBetween(t *testing.T) {
	p := Between(Match("("), While(unicode.IsLetter), Match(")"))

	out, rest, err := ParseString(p, "(abc) rest")
	assert.NoError(t, err)
	assert.Equal(t, "abc", out)
	assert.Equal(t, " rest", rest.Rest)

	_, _, err = ParseString(p, "(abc")
	perr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, 4, perr.Col)
}
