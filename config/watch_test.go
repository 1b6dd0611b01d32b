package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTuningReloads(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("jumpy:\n  jumpspeed: 450\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !ApplyTuningChanges(w) {
		if time.Now().After(deadline) {
			t.Fatal("no reload within 3s")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if Jumpy.JumpSpeed != 450 {
		t.Errorf("Jumpy.JumpSpeed = %v, want 450", Jumpy.JumpSpeed)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "watched.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if name, ok := w.Poll(); ok {
		t.Errorf("unexpected change %s", name)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "a.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
