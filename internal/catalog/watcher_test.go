package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("starting watcher: %v", err)
	}
	defer w.Stop()

	// Non-catalog files must not produce notifications.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte("[gates]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case lang := <-w.Changes:
		if lang != "en" {
			t.Errorf("changed language = %q, want en", lang)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "ru.toml")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("[gates]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case lang := <-w.Changes:
		if lang != "ru" {
			t.Errorf("changed language = %q, want ru", lang)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}

	// The burst collapses into one notification; no second one follows
	// within the debounce window.
	select {
	case lang := <-w.Changes:
		t.Errorf("unexpected second notification for %q", lang)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("expected error watching a missing directory")
	}
	// Stop must not hang even though no loop is running.
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop blocked on a watcher that never started")
	}
}
