package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised by FromEnv.
const (
	EnvMaintain   = "REABANK_MAINTAIN"
	EnvReset      = "REABANK_RESET"
	EnvShow       = "REABANK_SHOW"
	EnvShowFormat = "REABANK_SHOW_FORMAT"
	EnvLogLevel   = "REABANK_LOG_LEVEL"
	EnvLogFormat  = "REABANK_LOG_FORMAT"
)

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// FromEnv reads the REABANK_* variables out of environ (os.Environ format).
// Empty values are treated as unset.
func FromEnv(environ []string) (Settings, error) {
	vars := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, "REABANK_") && strings.TrimSpace(value) != "" {
			vars[name] = strings.TrimSpace(value)
		}
	}

	var s Settings
	var err error
	if s.Maintain, err = envBool(vars, EnvMaintain); err != nil {
		return Settings{}, err
	}
	if s.Reset, err = envBool(vars, EnvReset); err != nil {
		return Settings{}, err
	}
	if s.Show, err = envBool(vars, EnvShow); err != nil {
		return Settings{}, err
	}
	s.ShowFormat = envString(vars, EnvShowFormat)
	s.LogLevel = envString(vars, EnvLogLevel)
	s.LogFormat = envString(vars, EnvLogFormat)
	return s, nil
}

func envBool(vars map[string]string, name string) (*bool, error) {
	raw, ok := vars[name]
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, name, raw)
	}
	return &v, nil
}

func envString(vars map[string]string, name string) *string {
	raw, ok := vars[name]
	if !ok {
		return nil
	}
	v := strings.ToLower(raw)
	return &v
}
