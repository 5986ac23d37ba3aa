package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watch runs the batch file at path, then runs it again every time the file
// is written, until ctx is done. Each run's outcome is passed to done; run
// errors do not stop the watch.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are followed.
func (r *Runner) Watch(ctx context.Context, path string, debounce time.Duration, done func(Summary, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &InputFileError{Path: path, Err: err}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return &InputFileError{Path: path, Err: err}
	}

	run := func() {
		sum, err := r.RunFile(ctx, path)
		done(sum, err)
	}
	run()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				settle = time.After(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger().Warn("watch error", slog.String("file", path), slog.Any("error", err))

		case <-settle:
			settle = nil
			r.logger().Info("batch file changed", slog.String("file", path))
			run()
		}
	}
}
