package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher flags changes to one config file so personas can be reloaded
// between requests. It watches the file's directory so editors that
// replace the file on save are still caught, and falls back to mod-time
// polling when fsnotify is unavailable.
type Watcher struct {
	path string

	mu      sync.Mutex
	changed bool
	modTime time.Time

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher starts watching path. A missing file is not an error; the
// first write to it is reported as a change.
func NewWatcher(path string) (*Watcher, error) {
	w := &Watcher{
		path: filepath.Clean(path),
		done: make(chan struct{}),
	}
	if info, err := os.Stat(w.path); err == nil {
		w.modTime = info.ModTime()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		// Continue without watcher - mod-time polling still works
		return w, nil
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return w, nil
	}
	w.watcher = fsw

	go w.watchEvents()

	return w, nil
}

// watchEvents marks the changed flag on writes to the watched file.
func (w *Watcher) watchEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.changed = true
				w.mu.Unlock()
			}
		case <-w.watcher.Errors:
			// Ignore errors, keep watching
		}
	}
}

// Changed reports whether the file changed since the last call and
// clears the flag. A mod-time check backs up the fsnotify events.
func (w *Watcher) Changed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if info, err := os.Stat(w.path); err == nil {
		if !info.ModTime().Equal(w.modTime) {
			w.modTime = info.ModTime()
			w.changed = true
		}
	}

	changed := w.changed
	w.changed = false
	return changed
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	if w.watcher != nil {
		w.watcher.Close()
	}
}
