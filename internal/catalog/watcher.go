package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a catalog directory and reports when a catalog file is
// written, created, or removed, so long-lived consumers (the TUI) can reload
// names without restarting. Events are debounced: rapid editor save bursts
// collapse into one notification per file.
type Watcher struct {
	Dir     string
	Changes <-chan string // language whose catalog changed

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
	started bool
}

// NewWatcher creates a watcher for the given catalog directory.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 4)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the catalog directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. Safe to call on a watcher
// that never started or whose Start failed.
func (w *Watcher) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done
	}
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if filepath.Ext(event.Name) != ".toml" {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next write still arrives.
		}
	}
}

func (w *Watcher) emit(file string) {
	lang := filepath.Base(file)
	lang = lang[:len(lang)-len(filepath.Ext(lang))]
	select {
	case w.changes <- lang:
	default:
		// A slow consumer drops the notification; the file is re-read on
		// the next change anyway.
	}
}
