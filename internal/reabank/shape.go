package reabank

import "regexp"

// Shape identifies one of the recognised line layouts.
type Shape int

const (
	// Definition is a `//def-lsb <lsb> <articulation>` directive.
	Definition Shape = iota
	// Articulation is a `<lsb> <articulation>` entry inside a bank.
	Articulation
)

// DefinitionMarker prefixes every definition line.
const DefinitionMarker = "//def-lsb "

// Both patterns capture: LSB, articulation, optional " -..." suffix, optional
// trailing carriage return. The articulation cannot contain a hyphen, so the
// first " -" always starts the suffix.
var (
	definitionRegex   = regexp.MustCompile(`^//def-lsb (\d+) ([^-\r\n]+)( -[^\r\n]+)?(\r?)$`)
	articulationRegex = regexp.MustCompile(`^(\d+) ([^-\r\n]+)( -[^\r\n]+)?(\r?)$`)
)

func (s Shape) String() string {
	switch s {
	case Definition:
		return "definition"
	case Articulation:
		return "articulation"
	default:
		return "unknown"
	}
}

func (s Shape) regex() *regexp.Regexp {
	if s == Definition {
		return definitionRegex
	}
	return articulationRegex
}

func (s Shape) prefix() string {
	if s == Definition {
		return DefinitionMarker
	}
	return ""
}
