// Package config loads the optional settings that sit between the built-in
// defaults and the command-line flags: an HCL config file and REABANK_*
// environment variables, the latter optionally seeded from a .env file.
//
// Every setting is a pointer so that "not set" can be told apart from a zero
// value when sources are merged.
package config
