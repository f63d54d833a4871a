package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vk/reabank/internal/app"
	"github.com/vk/reabank/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds the raw flag values.
type options struct {
	maintain   bool
	print      bool
	reset      bool
	show       bool
	verbose    bool
	watch      bool
	showFormat string
	configPath string
	logLevel   string
	logFormat  string
}

func (o *options) bind(flags *pflag.FlagSet) {
	flags.BoolP("help", "?", false, "displays full usage instructions")
	flags.BoolVarP(&o.maintain, "maintain", "m", false, "maintains all existing articulation LSBs not numbered 0")
	flags.BoolVarP(&o.print, "print", "p", false, "prints output instead of writing Reabank file")
	flags.BoolVarP(&o.reset, "reset", "r", false, "renumbers all LSB definitions, even if they aren't set to 0")
	flags.BoolVarP(&o.show, "show", "s", false, "prints LSB/articulation pairs after processing")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "prints more details during processing. ignored if using -p|--print")
	flags.BoolVarP(&o.watch, "watch", "w", false, "keeps running and renumbers the input whenever it changes")
	flags.StringVar(&o.showFormat, "show-format", app.ShowFormatText, "format of -s|--show output: 'text', 'json' or 'yaml'")
	flags.StringVarP(&o.configPath, "config", "c", "", "path to HCL config file (default: "+config.DefaultFile+" if present)")
	flags.StringVar(&o.logLevel, "log-level", "info", "logging level: 'debug', 'info', 'warn', 'error'")
	flags.StringVar(&o.logFormat, "log-format", "text", "log output format: 'text' or 'json'")
}

// pick returns the flag value if the flag was given, else the setting if it
// is set, else the flag's default.
func pick[T any](flags *pflag.FlagSet, name string, flagVal T, setting *T) T {
	if flags.Changed(name) || setting == nil {
		return flagVal
	}
	return *setting
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return parse(args, output, os.Environ())
}

func parse(args []string, output io.Writer, environ []string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		opts   options
		cfg    *app.Config
		parsed bool
	)

	cmd := &cobra.Command{
		Use:                   "reabank [flags...] inputfile [outputfile]",
		Short:                 shortUsage,
		Long:                  longUsage,
		Args:                  cobra.MaximumNArgs(2),
		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed = true
			if len(args) == 0 {
				slog.Debug("No input path provided, printing usage.")
				// main reports the message on stderr.
				_ = cmd.Usage()
				return &ExitError{Code: 1, Message: "Path not given."}
			}

			c, err := opts.config(cmd.Flags(), args, environ)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			cfg = c
			return nil
		},
	}
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)
	opts.bind(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !parsed {
		// Help was requested and has been printed.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// config merges defaults, the config file, the environment and the flags, in
// increasing order of precedence.
func (o *options) config(flags *pflag.FlagSet, args []string, environ []string) (*app.Config, error) {
	fileSettings, err := config.LoadFile(context.Background(), o.configPath, environ)
	if err != nil {
		return nil, err
	}
	envSettings, err := config.FromEnv(environ)
	if err != nil {
		return nil, err
	}
	s := fileSettings.Merge(envSettings)

	c := app.Config{
		InputPath:  args[0],
		Maintain:   pick(flags, "maintain", o.maintain, s.Maintain),
		Reset:      pick(flags, "reset", o.reset, s.Reset),
		Print:      o.print,
		Show:       pick(flags, "show", o.show, s.Show),
		ShowFormat: pick(flags, "show-format", o.showFormat, s.ShowFormat),
		Verbose:    o.verbose,
		Watch:      o.watch,
		LogLevel:   pick(flags, "log-level", o.logLevel, s.LogLevel),
		LogFormat:  pick(flags, "log-format", o.logFormat, s.LogFormat),
	}
	if len(args) > 1 {
		c.OutputPath = args[1]
	}

	return app.NewConfig(c)
}
