// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the numbering lifecycle (read, number, write
// or print, show, and optionally watch), decoupled from any specific
// entrypoint like a CLI.
package app
