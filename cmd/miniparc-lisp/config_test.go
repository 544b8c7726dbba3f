package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/miniparc/diagnostic"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "miniparc.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
prompt: "lisp>"
diagnostic:
  max_width: 40
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "lisp>", config.Prompt)
	assert.Equal(t, "exit", config.ExitCommand)
	assert.Equal(t, ColorAuto, config.Color)
	assert.Equal(t, " \t", config.Whitespace)
	assert.Equal(t, 40, config.Diagnostic.MaxWidth)
	assert.Equal(t, "Parsing Error Here", config.Diagnostic.Label)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("MINIPARC_USER", "alice")
	path := writeConfig(t, `
prompt: "${MINIPARC_USER}>"
diagnostic:
  help: "ask $MINIPARC_USER"
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "alice>", config.Prompt)
	assert.Equal(t, "ask alice", config.Diagnostic.Help)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown color mode",
			content: "color: sometimes\n",
		},
		{
			name:    "negative max width",
			content: "diagnostic:\n  max_width: -1\n",
		},
		{
			name:    "max width too small for the ellipses",
			content: "diagnostic:\n  max_width: 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
		})
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "prompt: [unterminated\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "exit_comand: quit\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigAcceptsMinimumMaxWidth(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, fmt.Sprintf("diagnostic:\n  max_width: %d\n", diagnostic.MinWidth)))
	assert.NoError(t, err)
	assert.Equal(t, diagnostic.MinWidth, config.Diagnostic.MaxWidth)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MINIPARC_A", "x")
	t.Setenv("MINIPARC_PRICE", "$MINIPARC_A")

	tests := []struct {
		input    string
		expected string
	}{
		{input: "plain", expected: "plain"},
		{input: "${MINIPARC_A}-$MINIPARC_A", expected: "x-x"},
		{input: "${MINIPARC_UNSET_VAR}", expected: ""},
		{input: "${MINIPARC_PRICE}", expected: "$MINIPARC_A"},
		{input: "$MINIPARC_PRICE", expected: "$MINIPARC_A"},
		{input: "cost $5", expected: "cost $5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVars(tt.input))
		})
	}
}
