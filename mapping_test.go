package miniparc

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/alecthomas/assert/v2"
)

func TestMap(t *testing.T) {
	length := Map(While(unicode.IsLetter), func(s string) int { return len(s) })

	out, rest, err := ParseString(length, "abc1")
	assert.NoError(t, err)
	assert.Equal(t, 3, out)
	assert.Equal(t, "1", rest.Rest)

	_, _, err = ParseString(length, "1abc")
	assert.IsError(t, err, ErrPatternNotFound)
}

func TestTryMap(t *testing.T) {
	small := TryMap(While(unicode.IsDigit), func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n > 255 {
			return 0, false
		}
		return n, true
	})

	out, rest, err := ParseString(small, "200px")
	assert.NoError(t, err)
	assert.Equal(t, 200, out)
	assert.Equal(t, "px", rest.Rest)

	_, rest, err = ParseString(small, "300px")
	assert.IsError(t, err, ErrMappingFailed)
	assert.Equal(t, Input{}, rest)
	perr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, 3, perr.Col, "positioned after the consumed text")

	_, _, err = ParseString(small, "px")
	assert.IsError(t, err, ErrPatternNotFound)
}

func TestWithError(t *testing.T) {
	p := WithError(AndThen(Match("("), Match(")")).KeepBoth(), "missing closing parenthesis")

	_, _, err := ParseString(p, "(x")
	assert.IsError(t, err, ErrCustomMessage)
	perr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, "missing closing parenthesis", perr.Detail)
	assert.Equal(t, 1, perr.Col)

	out, _, err := ParseString(p, "()")
	assert.NoError(t, err)
	assert.Equal(t, Pair[string, string]{"(", ")"}, out)
}

func TestWithErrorPositionsPlainErrors(t *testing.T) {
	plain := ParserFunc[string](func(Input) (string, Input, error) {
		return "", Input{}, strconv.ErrSyntax
	})
	p := AndThen(Match("ab"), WithError[string](plain, "custom")).KeepSecond()

	_, _, err := ParseString(p, "abc")
	perr, ok := AsError(err)
	assert.True(t, ok)
	assert.Equal(t, 2, perr.Col)
}
