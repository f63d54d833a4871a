package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	// onWatch is called once the watcher is set up.
	onWatch func()
}

// NewApp is the constructor for the main application. Printed output and the
// show listing go to outW; logs go to logW through the App's own logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
