// Package registry keeps track of which LSB belongs to which articulation.
//
// The Registry holds two maps, LSB to articulation and articulation to LSB,
// as one consistency unit. The first registration of a key always wins: a
// later registration that pairs the key with a different partner leaves the
// existing binding alone and logs a warning, once per distinct conflicting
// pair. It also owns the cursor used to search for the next free LSB.
//
// A Registry lives for a single numbering run and is not safe for concurrent
// use.
package registry
