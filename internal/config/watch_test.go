package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_NoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".troika.yaml")
	if err := os.WriteFile(path, []byte("agents: {}\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Error("Changed() = true for untouched file")
	}
}

func TestWatcher_DetectsModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".troika.yaml")
	if err := os.WriteFile(path, []byte("agents: {}\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Bump the mod time explicitly so detection does not depend on
	// fsnotify event delivery.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to change mod time: %v", err)
	}

	if !w.Changed() {
		t.Error("Changed() = false after mod time bump")
	}

	// Mod-time changes do not produce write events, so the flag stays
	// cleared after the first read.
	if w.Changed() {
		t.Error("Changed() = true again without a new change")
	}
}

func TestWatcher_MissingFileThenCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".troika.yaml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Error("Changed() = true before the file exists")
	}

	if err := os.WriteFile(path, []byte("agents: {}\n"), 0644); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	if !w.Changed() {
		t.Error("Changed() = false after the file appeared")
	}
}

func TestWatcher_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".troika.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
}
