package app

import (
	"errors"
	"fmt"
)

// Show output formats.
const (
	ShowFormatText = "text"
	ShowFormatJSON = "json"
	ShowFormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // file or directory of .reabank files
	OutputPath string // defaults to InputPath

	Maintain bool
	Reset    bool

	Print      bool
	Show       bool
	ShowFormat string
	Verbose    bool
	Watch      bool

	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	if cfg.ShowFormat == "" {
		cfg.ShowFormat = ShowFormatText
	}
	switch cfg.ShowFormat {
	case ShowFormatText, ShowFormatJSON, ShowFormatYAML:
	default:
		return nil, fmt.Errorf("invalid show-format %q: must be 'text', 'json' or 'yaml'", cfg.ShowFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// output returns the path the result of numbering in is written to.
func (c *Config) output(in string) string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return in
}
