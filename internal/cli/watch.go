package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a file must stay quiet before a rerun.
const watchDebounce = 200 * time.Millisecond

// fileWatcher reruns a callback when any of a set of files is written or
// replaced. It watches the parent directories so editors that save by
// renaming a temp file over the original are still seen.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
}

func newFileWatcher(files []string, debounce time.Duration, logger *slog.Logger) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &fileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		debounce: debounce,
		logger:   logger,
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("resolve %s: %w", f, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Run calls onChange after each burst of changes to the watched files.
// It blocks until ctx is cancelled and closes the watcher on return.
func (w *fileWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("watched file changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}
