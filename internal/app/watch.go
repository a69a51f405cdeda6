package app

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls the open design file and reports when another program
// has rewritten it.
type FileWatcher struct {
	mu            sync.Mutex
	path          string
	baseline      time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	running       bool
	onChange      func(path string)
}

// NewFileWatcher creates a watcher for path. It returns nil if the file
// cannot be stat'ed.
func NewFileWatcher(path string, checkInterval time.Duration) *FileWatcher {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &FileWatcher{
		path:          path,
		baseline:      info.ModTime(),
		checkInterval: checkInterval,
	}
}

// OnChange sets the callback to invoke when the file is newer than the
// baseline. The callback runs on the watcher goroutine.
func (w *FileWatcher) OnChange(callback func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// Start begins polling in a background goroutine.
func (w *FileWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.stopCh = make(chan struct{})
	w.running = true
	go w.watchLoop(w.stopCh)
}

// Stop stops the watcher goroutine.
func (w *FileWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	close(w.stopCh)
	w.running = false
}

// Path returns the watched file.
func (w *FileWatcher) Path() string { return w.path }

// ResetBaseline accepts the file's current modification time, e.g. after
// the application itself saved it or the user declined to reload.
func (w *FileWatcher) ResetBaseline() {
	if info, err := os.Stat(w.path); err == nil {
		w.mu.Lock()
		w.baseline = info.ModTime()
		w.mu.Unlock()
	}
}

func (w *FileWatcher) watchLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !w.Changed() {
				continue
			}
			w.ResetBaseline()
			w.mu.Lock()
			cb := w.onChange
			w.mu.Unlock()
			if cb != nil {
				cb(w.path)
			}
		}
	}
}

// Changed reports whether the file was modified after the baseline.
func (w *FileWatcher) Changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return info.ModTime().After(w.baseline)
}
