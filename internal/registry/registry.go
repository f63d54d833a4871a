package registry

import (
	"log/slog"
	"sort"
)

// Entry is a registered LSB/articulation pair.
type Entry struct {
	LSB          int    `json:"lsb" yaml:"lsb"`
	Articulation string `json:"articulation" yaml:"articulation"`
}

type articulationConflict struct {
	existing, incoming string
}

type lsbConflict struct {
	existing, incoming int
}

// Registry holds the LSB/articulation bindings of a single numbering run.
type Registry struct {
	logger *slog.Logger

	articulations map[int]string // Key: LSB, Value: articulation
	lsbs          map[string]int // Key: articulation, Value: LSB

	// Last conflict reported per key, so repeats stay quiet.
	warnedArticulations map[int]articulationConflict
	warnedLSBs          map[string]lsbConflict

	lastLSB int
}

// New creates an empty Registry. Conflict warnings are written to logger, or
// to slog.Default() when logger is nil.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:              logger,
		articulations:       make(map[int]string),
		lsbs:                make(map[string]int),
		warnedArticulations: make(map[int]articulationConflict),
		warnedLSBs:          make(map[string]lsbConflict),
	}
}

// Register binds lsb and articulation to each other. Each direction is checked
// on its own: an unbound key is bound, a key already bound to the same partner
// is left as is, and a key bound to a different partner keeps its binding and
// triggers a warning.
func (r *Registry) Register(lsb int, articulation string) {
	if found, ok := r.articulations[lsb]; ok {
		if found != articulation {
			r.warnConflictingArticulation(lsb, found, articulation)
		}
	} else {
		r.articulations[lsb] = articulation
	}

	if found, ok := r.lsbs[articulation]; ok {
		if found != lsb {
			r.warnConflictingLSB(articulation, found, lsb)
		}
	} else {
		r.lsbs[articulation] = lsb
	}
}

func (r *Registry) warnConflictingArticulation(lsb int, existing, incoming string) {
	c := articulationConflict{existing: existing, incoming: incoming}
	if warned, ok := r.warnedArticulations[lsb]; ok && warned == c {
		return
	}
	r.logger.Warn("Conflicting articulations for LSB.", "lsb", lsb, "articulation", existing, "conflict", incoming)
	r.warnedArticulations[lsb] = c
}

func (r *Registry) warnConflictingLSB(articulation string, existing, incoming int) {
	c := lsbConflict{existing: existing, incoming: incoming}
	if warned, ok := r.warnedLSBs[articulation]; ok && warned == c {
		return
	}
	r.logger.Warn("Conflicting LSBs for articulation.", "articulation", articulation, "lsb", existing, "conflict", incoming)
	r.warnedLSBs[articulation] = c
}

// HasArticulation reports whether an articulation is registered for lsb.
func (r *Registry) HasArticulation(lsb int) bool {
	_, ok := r.articulations[lsb]
	return ok
}

// Articulation returns the articulation registered for lsb.
func (r *Registry) Articulation(lsb int) (string, bool) {
	a, ok := r.articulations[lsb]
	return a, ok
}

// HasLSB reports whether an LSB is registered for articulation.
func (r *Registry) HasLSB(articulation string) bool {
	_, ok := r.lsbs[articulation]
	return ok
}

// LSB returns the LSB registered for articulation.
func (r *Registry) LSB(articulation string) (int, bool) {
	lsb, ok := r.lsbs[articulation]
	return lsb, ok
}

// NextFree returns the smallest LSB above the last one it returned that has
// no articulation registered. The result is not registered; call Register to
// reserve it, otherwise only the cursor protects it.
func (r *Registry) NextFree() int {
	lsb := r.lastLSB + 1
	for r.HasArticulation(lsb) {
		lsb++
	}
	r.lastLSB = lsb
	return lsb
}

// Entries returns every registered pair ordered by ascending LSB.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.articulations))
	for lsb, articulation := range r.articulations {
		entries = append(entries, Entry{LSB: lsb, Articulation: articulation})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LSB < entries[j].LSB
	})
	return entries
}

// Len returns the number of registered LSBs.
func (r *Registry) Len() int {
	return len(r.articulations)
}
