package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts editors produce when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file when it changes on disk.
// The parent directory is watched rather than the file itself, so
// atomic save-and-rename editors keep triggering reloads.
type Watcher struct {
	path     string
	onChange func(*Config)

	// OnError receives load failures during reload. Nil errors are
	// never delivered; a nil handler drops them.
	OnError func(error)

	// Debounce is the quiet period required before a reload fires.
	Debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for path. onChange receives each
// successfully reloaded configuration. Call Start to begin watching.
func NewWatcher(path string, onChange func(*Config)) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		Debounce: defaultDebounce,
	}
}

// Start begins watching the configuration file's directory.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(w.path)
	if err != nil {
		fsw.Close()
		return err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return err
	}

	w.path = abs
	w.watcher = fsw
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	w.watcher = nil
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				fire = timer.C
			} else {
				timer.Reset(w.Debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-fire:
			timer = nil
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.reportError(err)
				continue
			}
			w.onChange(cfg)
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil && err != nil {
		w.OnError(err)
	}
}
