// Package watch reports external writes to the open project file using
// filesystem notifications. The directory is watched rather than the
// file itself because editors that save via rename replace the inode.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ProjectWatcher = (*Watcher)(nil)

// Watcher is an fsnotify-backed implementation of driven.ProjectWatcher.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	done    chan struct{}
	started bool
}

// NewWatcher creates a new project file watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Watcher{fsw: fsw, done: make(chan struct{})}, nil
}

// Watch starts watching path. Each external write is delivered as one
// value on the returned channel.
func (w *Watcher) Watch(path string) (<-chan string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil, fmt.Errorf("watcher already started")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return nil, fmt.Errorf("watching %q: %w", filepath.Dir(abs), err)
	}
	w.started = true

	events := make(chan string, 1)
	go w.run(abs, events)
	return events, nil
}

// run forwards write events for the watched file until Close.
func (w *Watcher) run(path string, events chan<- string) {
	defer close(events)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Project file changed on disk: %s", ev.Op)
			select {
			case events <- path:
			default:
				// A pending notification is enough; drop duplicates.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("File watcher error: %v", err)
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.fsw.Close()
}
