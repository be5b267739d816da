package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/ports"
)

// SkipDirFunc reports whether a directory tree should not be watched
type SkipDirFunc func(path string) bool

// FSWatcher implements ports.EventSource with fsnotify, watching a tree recursively.
// fsnotify watches single directories, so every directory is registered on start
// and new directories are registered as they appear.
type FSWatcher struct {
	ready     chan struct{}
	readyOnce sync.Once
	root      string
	skipDir   SkipDirFunc
}

// Compile-time interface verification
var _ ports.EventSource = (*FSWatcher)(nil)

// NewFSWatcher creates a watcher for root. skipDir may be nil.
func NewFSWatcher(root string, skipDir SkipDirFunc) *FSWatcher {
	return &FSWatcher{
		ready:   make(chan struct{}),
		root:    filepath.Clean(root),
		skipDir: skipDir,
	}
}

// Ready is closed once the initial directory tree is registered
func (w *FSWatcher) Ready() <-chan struct{} {
	return w.ready
}

// Watch sends one single-path event per filesystem notification until ctx is cancelled.
// Attribute-only changes are dropped.
func (w *FSWatcher) Watch(ctx context.Context, events chan<- domain.ChangeEvent) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	count, err := w.addTree(fsw, w.root)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	logging.Logger.Info("Watching directory tree", "root", w.root, "directories", count)
	w.readyOnce.Do(func() { close(w.ready) })

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}

			event, err := w.normalize(fsw, ev)
			if err != nil {
				logging.Logger.Warn("Dropping malformed event", "event", ev.String(), "error", err)
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Watch error", "root", w.root, "error", err)
		}
	}
}

// normalize converts a raw notification into a ChangeEvent.
// Directory-ness is read from disk; a path that no longer exists is treated as a file.
func (w *FSWatcher) normalize(fsw *fsnotify.Watcher, ev fsnotify.Event) (domain.ChangeEvent, error) {
	isDir := false
	if info, err := os.Lstat(ev.Name); err == nil {
		isDir = info.IsDir()
	}

	if isDir && ev.Has(fsnotify.Create) {
		if count, err := w.addTree(fsw, ev.Name); err != nil {
			logging.Logger.Warn("Failed to watch new directory", "path", ev.Name, "error", err)
		} else {
			logging.Logger.Debug("Watching new directory", "path", ev.Name, "directories", count)
		}
	}

	logging.Logger.Debug("Filesystem event", "path", ev.Name, "op", ev.Op.String(), "is_dir", isDir)

	return domain.NewChangeEvent(isDir, ev.Name)
}

// addTree registers dir and every directory below it that is not skipped
func (w *FSWatcher) addTree(fsw *fsnotify.Watcher, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logging.Logger.Debug("Skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.skipDir != nil && w.skipDir(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			logging.Logger.Warn("Failed to watch directory", "path", path, "error", err)
			return nil
		}
		count++
		return nil
	})
	return count, err
}
