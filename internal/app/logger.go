package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/reabank/internal/ctxlog"
	"github.com/vk/reabank/internal/engine"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// verbose reports whether progress messages should be logged. They are
// dropped while printing so that logs never mix with the printed file.
func (a *App) verbose() bool {
	return a.config.Verbose && !a.config.Print
}

func (a *App) logVerbose(ctx context.Context, msg string, args ...any) {
	if a.verbose() {
		ctxlog.FromContext(ctx).Info(msg, args...)
	}
}

// sink adapts the context logger to the engine's debug sink.
func sink(ctx context.Context) engine.Sink {
	logger := ctxlog.FromContext(ctx)
	return func(args ...any) {
		logger.Info(fmt.Sprint(args...))
	}
}
