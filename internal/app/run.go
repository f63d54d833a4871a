package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/reabank/internal/ctxlog"
	"github.com/vk/reabank/internal/engine"
	"github.com/vk/reabank/internal/fsutil"
)

// Extension is the file extension searched for when the input is a directory.
const Extension = ".reabank"

// job is one file to number and where to put the result.
type job struct {
	in, out string
}

// Run numbers every input file once and then, in watch mode, keeps numbering
// them whenever they change until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	jobs, err := a.jobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		a.logger.Warn("No Reabank files found, nothing to number.", "path", a.config.InputPath)
		return nil
	}

	for _, j := range jobs {
		if err := a.numberFile(ctx, j); err != nil {
			return err
		}
	}

	if a.config.Watch {
		return a.watch(ctx, jobs)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// jobs resolves the input path into the files to number.
func (a *App) jobs() ([]job, error) {
	in := a.config.InputPath
	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", in, err)
	}

	if !info.IsDir() {
		return []job{{in: in, out: a.config.output(in)}}, nil
	}

	if a.config.OutputPath != "" {
		return nil, errors.New("an output path cannot be used when the input is a directory")
	}
	files, err := fsutil.FindBanks(in, Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", in, err)
	}
	jobs := make([]job, 0, len(files))
	for _, f := range files {
		jobs = append(jobs, job{in: f, out: f})
	}
	a.logger.Debug("Discovered Reabank files.", "count", len(jobs), "path", in)
	return jobs, nil
}

// numberFile reads, numbers and writes (or prints) a single file.
func (a *App) numberFile(ctx context.Context, j job) error {
	ctx = ctxlog.With(ctx, "file", j.in)
	logger := ctxlog.FromContext(ctx)

	a.logVerbose(ctx, "Reading Reabank file...")
	data, err := os.ReadFile(j.in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", j.in, err)
	}

	n := engine.New(string(data),
		engine.WithDebug(a.verbose()),
		engine.WithSink(sink(ctx)),
		engine.WithLogger(logger),
	)
	n.Number(engine.Policy{
		Maintain:            a.config.Maintain,
		RenumberDefinitions: a.config.Reset,
	})
	output := n.Output()

	if a.config.Print {
		_, err := fmt.Fprintln(a.outW, output)
		return err
	}

	if j.in == j.out && output == string(data) {
		a.logVerbose(ctx, "Reabank file already numbered, nothing to write.")
	} else {
		a.logVerbose(ctx, "Writing file...")
		if err := fsutil.WriteFileAtomic(j.out, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", j.out, err)
		}
		a.logVerbose(ctx, fmt.Sprintf("Updated Reabank file written to %s.", j.out))
	}

	if a.config.Show {
		if err := writeEntries(a.outW, a.config.ShowFormat, n.Articulations()); err != nil {
			return fmt.Errorf("failed to show articulations: %w", err)
		}
	}
	return nil
}
