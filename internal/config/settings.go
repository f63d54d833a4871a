package config

import "errors"

// ErrInvalidValue is returned when a setting cannot be interpreted.
var ErrInvalidValue = errors.New("invalid config value")

// Settings are the user-tunable options that may come from a file or the
// environment. A nil field is unset.
type Settings struct {
	Maintain   *bool
	Reset      *bool
	Show       *bool
	ShowFormat *string
	LogLevel   *string
	LogFormat  *string
}

// Merge returns a copy of s with every field that is set in over replacing
// the field in s.
func (s Settings) Merge(over Settings) Settings {
	if over.Maintain != nil {
		s.Maintain = over.Maintain
	}
	if over.Reset != nil {
		s.Reset = over.Reset
	}
	if over.Show != nil {
		s.Show = over.Show
	}
	if over.ShowFormat != nil {
		s.ShowFormat = over.ShowFormat
	}
	if over.LogLevel != nil {
		s.LogLevel = over.LogLevel
	}
	if over.LogFormat != nil {
		s.LogFormat = over.LogFormat
	}
	return s
}
