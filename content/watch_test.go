package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchDocV1 = `
animations:
  blink:
    lens: opacity
    duration: 100ms
    params: {start: 0, end: 1}
`

const watchDocV2 = `
animations:
  blink:
    lens: opacity
    duration: 100ms
    params: {start: 0, end: 1}
  slide:
    lens: transform_position
    duration: 1s
    params:
      start: {x: 0, y: 0}
      end: {x: 1, y: 1}
`

func writeDoc(t *testing.T, path, doc string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animations.yaml")
	writeDoc(t, path, watchDocV1)

	reloads := make(chan struct{}, 8)
	w, err := Watch(path, func(*Library) { reloads <- struct{}{} })
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if got := w.Library().Names(); len(got) != 1 || got[0] != "blink" {
		t.Fatalf("initial names = %v", got)
	}

	writeDoc(t, path, watchDocV2)
	if !waitFor(t, func() bool { return len(w.Library().Names()) == 2 }) {
		t.Fatal("library never picked up the new definition")
	}

	select {
	case <-reloads:
	default:
		t.Error("reload callback did not fire")
	}
}

func TestWatcherKeepsOldOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animations.yaml")
	writeDoc(t, path, watchDocV1)

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	writeDoc(t, path, "animations:\n  broken:\n    lens: warp\n    duration: 1s\n")
	// give the failed reload a moment, then confirm nothing changed
	time.Sleep(300 * time.Millisecond)
	if got := w.Library().Names(); len(got) != 1 || got[0] != "blink" {
		t.Errorf("names = %v, want unchanged [blink]", got)
	}
}
