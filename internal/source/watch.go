package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a file document whenever it is written or replaced.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so
// editors that save by renaming a new file over the old one are seen.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(path), w: w}, nil
}

// Run calls onChange with the reloaded document after every change until ctx
// is done. Read failures are logged and skipped; the file may be mid-write.
func (w *Watcher) Run(ctx context.Context, onChange func(Document)) error {
	defer w.w.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			doc, err := loadFile(w.path)
			if err != nil {
				slog.Warn("reloading watched file", "path", w.path, "err", err)
				continue
			}
			slog.Debug("reloaded watched file", "path", w.path, "bytes", len(doc.Text))
			onChange(doc)
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher", "path", w.path, "err", err)
		}
	}
}
