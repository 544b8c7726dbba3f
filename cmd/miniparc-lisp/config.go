package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/miniparc/diagnostic"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the miniparc-lisp configuration
type Config struct {
	Prompt      string           `yaml:"prompt"`
	ExitCommand string           `yaml:"exit_command"`
	Color       string           `yaml:"color"`
	Trace       bool             `yaml:"trace"`
	Whitespace  string           `yaml:"whitespace"`
	Diagnostic  DiagnosticConfig `yaml:"diagnostic"`
}

// DiagnosticConfig represents the wording and layout of rendered parse errors
type DiagnosticConfig struct {
	Title    string `yaml:"title"`
	Label    string `yaml:"label"`
	Help     string `yaml:"help"`
	MaxWidth int    `yaml:"max_width"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Prompt:      "Please enter a single lisp line to parse it:",
		ExitCommand: "exit",
		Color:       ColorAuto,
		Whitespace:  " \t",
		Diagnostic: DiagnosticConfig{
			Title: "Error during parsing",
			Label: "Parsing Error Here",
			Help:  "try doing it better next time?",
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Prompt == "" {
		config.Prompt = defaults.Prompt
	}
	if config.ExitCommand == "" {
		config.ExitCommand = defaults.ExitCommand
	}
	if config.Color == "" {
		config.Color = defaults.Color
	}
	if config.Whitespace == "" {
		config.Whitespace = defaults.Whitespace
	}
	if config.Diagnostic.Title == "" {
		config.Diagnostic.Title = defaults.Diagnostic.Title
	}
	if config.Diagnostic.Label == "" {
		config.Diagnostic.Label = defaults.Diagnostic.Label
	}
	if config.Diagnostic.Help == "" {
		config.Diagnostic.Help = defaults.Diagnostic.Help
	}
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	validColors := map[string]bool{
		ColorAuto:   true,
		ColorAlways: true,
		ColorNever:  true,
	}
	if !validColors[config.Color] {
		return fmt.Errorf("%w: invalid color '%s': must be one of auto, always, never", ErrConfigValidation, config.Color)
	}

	if config.Diagnostic.MaxWidth < 0 {
		return fmt.Errorf("%w: diagnostic.max_width must be non-negative, got %d", ErrConfigValidation, config.Diagnostic.MaxWidth)
	}
	if config.Diagnostic.MaxWidth > 0 && config.Diagnostic.MaxWidth < diagnostic.MinWidth {
		return fmt.Errorf("%w: diagnostic.max_width must be 0 or at least %d, got %d", ErrConfigValidation, diagnostic.MinWidth, config.Diagnostic.MaxWidth)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR.
// Substituted values are not expanded again.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if groups[1] != "" {
			return os.Getenv(groups[1])
		}
		return os.Getenv(groups[2])
	})
}

// expandConfigEnvVars expands environment variables in user-facing texts
func expandConfigEnvVars(config *Config) {
	config.Prompt = expandEnvVars(config.Prompt)
	config.Diagnostic.Title = expandEnvVars(config.Diagnostic.Title)
	config.Diagnostic.Label = expandEnvVars(config.Diagnostic.Label)
	config.Diagnostic.Help = expandEnvVars(config.Diagnostic.Help)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
