package engine

import (
	"fmt"
	"log/slog"
)

// Sink receives the debug messages of a Numberer.
type Sink func(args ...any)

// Option configures a Numberer.
type Option func(*Numberer)

// WithDebug enables or disables debug messages.
func WithDebug(debug bool) Option {
	return func(n *Numberer) {
		n.debug = debug
	}
}

// WithSink routes debug messages to sink instead of the default logger.
func WithSink(sink Sink) Option {
	return func(n *Numberer) {
		if sink != nil {
			n.sink = sink
		}
	}
}

// WithLogger sets the logger that receives LSB conflict warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Numberer) {
		n.logger = logger
	}
}

func defaultSink(args ...any) {
	slog.Default().Info(fmt.Sprint(args...))
}
