package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/reabank/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is the config file picked up from the working directory when
// no path is given.
const DefaultFile = "reabank.hcl"

// fileRoot is the layout of a config file. Every block is optional.
type fileRoot struct {
	Numbering *numberingBlock `hcl:"numbering,block"`
	Output    *outputBlock    `hcl:"output,block"`
	Logging   *loggingBlock   `hcl:"logging,block"`
}

type numberingBlock struct {
	Maintain *bool `hcl:"maintain,optional"`
	Reset    *bool `hcl:"reset,optional"`
}

type outputBlock struct {
	Show   *bool   `hcl:"show,optional"`
	Format *string `hcl:"format,optional"`
}

type loggingBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// LoadFile reads and decodes the HCL config file at path. When path is empty
// the DefaultFile is used if it exists; a missing default is not an error.
func LoadFile(ctx context.Context, path string, environ []string) (Settings, error) {
	logger := ctxlog.FromContext(ctx)

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			logger.Debug("No config file found, using defaults.", "path", path)
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	settings, err := Parse(src, path, environ)
	if err != nil {
		return Settings{}, err
	}
	logger.Debug("Config file loaded.", "path", path)
	return settings, nil
}

// Parse decodes HCL config source. filename is only used in diagnostics.
// Expressions can read the process environment through the `env` object,
// e.g. `level = env.REABANK_LOG_LEVEL`.
func Parse(src []byte, filename string, environ []string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(environ), &root)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	var s Settings
	if b := root.Numbering; b != nil {
		s.Maintain, s.Reset = b.Maintain, b.Reset
	}
	if b := root.Output; b != nil {
		s.Show, s.ShowFormat = b.Show, b.Format
	}
	if b := root.Logging; b != nil {
		s.LogLevel, s.LogFormat = b.Level, b.Format
	}
	return s, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
