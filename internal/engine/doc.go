// Package engine numbers the LSBs of a Reabank file.
//
// A Numberer takes the whole file body, splits it into lines and runs two
// passes over them. The definitions pass handles `//def-lsb` lines: unless
// every definition is being renumbered, existing non-zero definitions are read
// first so that they keep their LSBs, then every definition set to 0 gets the
// next free LSB. The articulations pass then gives each articulation line the
// LSB already registered for its name, or the next free one.
//
// Order matters: definitions always come before articulations, and within a
// pass lines are handled in file order, because allocation and reuse depend
// on what earlier lines registered.
package engine
