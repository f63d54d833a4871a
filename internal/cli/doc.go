// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It merges
// the flags with the optional config file and environment into the
// application's internal configuration.
package cli
