package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestEmit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := em.Emit(KindChartStart, "alice", map[string]any{"year": 1990}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := em.Emit(KindChartDone, "alice", nil); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindChartStart || events[0].Label != "alice" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("event timestamp not stamped")
	}
	if events[1].Kind != KindChartDone {
		t.Errorf("second event kind = %q", events[1].Kind)
	}
}

func TestEmitAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")

	for i := 0; i < 2; i++ {
		em, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if err := em.Emit(KindBatchStart, "", nil); err != nil {
			t.Fatalf("emit %d: %v", i, err)
		}
		if err := em.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}

	if events := readEvents(t, path); len(events) != 2 {
		t.Fatalf("expected 2 appended events, got %d", len(events))
	}
}

func TestEmitConcurrent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := NewEmitter(path)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = em.Emit(KindChartDone, "job", nil)
			}
		}()
	}
	wg.Wait()
	if err := em.Close(); err != nil {
		t.Fatal(err)
	}

	// Every line must still be one intact JSON document.
	if events := readEvents(t, path); len(events) != 200 {
		t.Fatalf("expected 200 events, got %d", len(events))
	}
}

func TestNilEmitterIsNoOp(t *testing.T) {
	t.Parallel()

	var em *Emitter
	if err := em.Emit(KindBatchStart, "", nil); err != nil {
		t.Errorf("nil Emit returned %v", err)
	}
	if err := em.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
}

func readEvents(t *testing.T, path string) []Event {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("bad event line %q: %v", scanner.Text(), err)
		}
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning: %v", err)
	}
	return events
}
