package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/reabank/internal/ctxlog"
)

// debounceDur is how long a file has to stay quiet before it is renumbered.
const debounceDur = 200 * time.Millisecond

// watch renumbers jobs whose input changes until ctx is cancelled. Parent
// directories are watched rather than the files themselves, because an
// atomic save replaces the file and would drop a per-file watch.
func (a *App) watch(ctx context.Context, jobs []job) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	byPath := make(map[string]job, len(jobs))
	dirs := make(map[string]struct{})
	for _, j := range jobs {
		abs, err := filepath.Abs(j.in)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", j.in, err)
		}
		byPath[abs] = j
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logger.Info("Watching for changes.", "files", len(byPath), "directories", len(dirs))
	if a.onWatch != nil {
		a.onWatch()
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounceDur / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := byPath[abs]; ok {
				logger.Debug("Change detected.", "file", abs, "op", event.Op.String())
				pending[abs] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)

		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < debounceDur {
					continue
				}
				delete(pending, path)
				if err := a.numberFile(ctx, byPath[path]); err != nil {
					// Keep watching; the next save may fix it.
					logger.Error("Failed to number changed file.", "file", path, "error", err)
				}
			}
		}
	}
}
