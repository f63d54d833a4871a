package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/reabank/internal/reabank"
	"github.com/vk/reabank/internal/registry"
)

// ErrNoData is returned when a Numberer is constructed without a file body.
var ErrNoData = errors.New("reabank data must be provided")

// unassigned is the LSB that asks for a new LSB to be allocated.
const unassigned = 0

// Policy selects how existing LSBs are treated.
type Policy struct {
	// Maintain keeps every non-zero articulation LSB as it is.
	Maintain bool
	// RenumberDefinitions reallocates every definition, including non-zero ones.
	RenumberDefinitions bool
}

// Numberer numbers the LSBs of one Reabank file body. It is single-use.
type Numberer struct {
	lines    []string
	registry *registry.Registry

	debug  bool
	sink   Sink
	logger *slog.Logger
}

// New creates a Numberer for the given Reabank file body.
func New(data string, opts ...Option) *Numberer {
	n := &Numberer{
		lines: strings.Split(data, "\n"),
		sink:  defaultSink,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.registry = registry.New(n.logger)
	return n
}

// FromReader creates a Numberer from the full contents of r.
func FromReader(r io.Reader, opts ...Option) (*Numberer, error) {
	if r == nil {
		return nil, ErrNoData
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read reabank data: %w", err)
	}
	return New(string(data), opts...), nil
}

// Debug reports whether debug messages are enabled.
func (n *Numberer) Debug() bool {
	return n.debug
}

func (n *Numberer) log(args ...any) {
	if n.debug {
		n.sink(args...)
	}
}

// Number runs the definitions pass and then the articulations pass.
func (n *Numberer) Number(p Policy) {
	n.numberDefinitions(p.RenumberDefinitions)
	n.numberArticulations(p.Maintain)
	n.log("Finished numbering LSBs.")
}

// readDefinitions registers every definition that already has an LSB.
func (n *Numberer) readDefinitions() {
	n.log("Reading definitions...")
	for _, line := range n.lines {
		reabank.ParseDefinition(line, func(lsb, articulation string, _ func(string) string) {
			if v, ok := parseLSB(lsb); ok && v != unassigned {
				n.registry.Register(v, articulation)
			}
		})
	}
}

func (n *Numberer) numberDefinitions(renumberAll bool) {
	if !renumberAll {
		n.readDefinitions()
	}

	n.log("Numbering definitions...")
	for i, line := range n.lines {
		n.lines[i] = reabank.UpdateDefinition(line, func(lsb, articulation string) string {
			if renumberAll {
				return n.allocate(articulation)
			}
			if v, ok := parseLSB(lsb); !ok || v != unassigned {
				return lsb
			}
			return n.allocate(articulation)
		})
	}
}

func (n *Numberer) numberArticulations(maintain bool) {
	n.log("Numbering articulations...")
	for i, line := range n.lines {
		n.lines[i] = reabank.UpdateArticulation(line, func(lsb, articulation string) string {
			if maintain {
				// Ids too large to register are still kept as written.
				v, ok := parseLSB(lsb)
				if !ok {
					return lsb
				}
				if v != unassigned {
					n.registry.Register(v, articulation)
					return lsb
				}
			}

			if existing, ok := n.registry.LSB(articulation); ok {
				return strconv.Itoa(existing)
			}
			return n.allocate(articulation)
		})
	}
}

// allocate reserves the next free LSB for articulation.
func (n *Numberer) allocate(articulation string) string {
	lsb := n.registry.NextFree()
	n.registry.Register(lsb, articulation)
	return strconv.Itoa(lsb)
}

// Output returns the processed file body.
func (n *Numberer) Output() string {
	return strings.Join(n.lines, "\n")
}

// Articulations returns every registered LSB/articulation pair by ascending LSB.
func (n *Numberer) Articulations() []registry.Entry {
	return n.registry.Entries()
}

// parseLSB converts the digits of a line's LSB. Values too large for an int
// are reported as not ok.
func parseLSB(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
