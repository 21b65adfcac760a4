package policy

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the reloaded policy each time the file at path is
// written or recreated. It blocks until ctx is done and then returns nil.
//
// A reload that fails to parse or validate is logged and skipped, so fn
// only ever sees valid policies. A nil logger uses slog.Default().
func Watch(ctx context.Context, path string, fn func(Policy), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := FormatFromPath(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := Load(path)
			if err != nil {
				logger.Warn("policy reload failed",
					slog.String("path", path),
					slog.String("error", err.Error()))
				continue
			}
			logger.Debug("policy reloaded", slog.String("path", path))
			fn(p)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("policy watcher error", slog.String("error", err.Error()))
		}
	}
}
