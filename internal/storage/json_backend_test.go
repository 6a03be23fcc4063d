package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONBackendLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quitlog.json")
	b := NewJSONBackend(path)

	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.Init(); err == nil {
		t.Fatal("second Init should fail on an existing store")
	}

	if err := b.Set("giveups", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh backend instance has to read what the first one wrote.
	reopened := NewJSONBackend(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	raw, ok, err := reopened.Get("giveups")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(raw) != `[{"id":"a"}]` {
		t.Errorf("round-tripped value = %s", raw)
	}

	if _, ok, err := reopened.Get("no-such-slot"); err != nil || ok {
		t.Errorf("absent slot: ok=%v err=%v", ok, err)
	}
}

func TestJSONBackendLoadMissing(t *testing.T) {
	b := NewJSONBackend(filepath.Join(t.TempDir(), "missing.json"))
	err := b.Load()
	if err == nil {
		t.Fatal("Load should fail when the store does not exist")
	}
	if !strings.Contains(err.Error(), "quitlog init") {
		t.Errorf("error should point at init, got: %v", err)
	}
}

func TestJSONBackendLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quitlog.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewJSONBackend(path).Load(); err == nil {
		t.Fatal("Load should fail on an unparseable file")
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("store.json").(*JSONBackend); !ok {
		t.Error(".json should pick the JSON backend")
	}
	if _, ok := ForPath("store.JSON").(*JSONBackend); !ok {
		t.Error("extension match should be case-insensitive")
	}
	if _, ok := ForPath("/data/quitlog").(*BadgerBackend); !ok {
		t.Error("extensionless path should pick the Badger backend")
	}
	if _, ok := ForPath("quitlog.db").(*SQLiteBackend); !ok {
		t.Error("other extensions should pick the SQLite backend")
	}
}
