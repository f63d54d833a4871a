// Package reabank recognises the two Reabank line shapes that carry an LSB:
// `//def-lsb` definition lines and bare articulation lines. It extracts the
// LSB and articulation name from a matching line and rebuilds the line with a
// different LSB, leaving every other byte as it was.
//
// The package holds no numbering policy; deciding which LSB a line should get
// is the job of the engine package.
package reabank
