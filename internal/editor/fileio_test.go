package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	original := "package main\n\nfunc main() {\n\tprintln(42)\n}\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("seeding fixture: %v", err)
	}

	e := New(nil, nil, 0)
	if err := e.Open(path); err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	if e.Dirty() != 0 {
		t.Errorf("Dirty() = %d after Open, want 0", e.Dirty())
	}
	if e.Syntax() == nil || e.Syntax().Filetype != "go" {
		t.Errorf("Syntax() = %v, want the go profile for a .go path", e.Syntax())
	}

	e.InsertChar('!')
	if e.Dirty() == 0 {
		t.Fatal("Dirty() = 0 after an edit, want nonzero")
	}

	e.Save()
	if e.Dirty() != 0 {
		t.Errorf("Dirty() = %d after Save, want 0", e.Dirty())
	}

	roundTripped, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back %q: %v", path, err)
	}
	if got, want := string(roundTripped), string(e.RowsToString()); got != want {
		t.Errorf("saved file = %q, want %q", got, want)
	}
}

func TestOpenMissingFileReturnsFileOpenError(t *testing.T) {
	e := New(nil, nil, 0)
	err := e.Open(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("Open on a missing file: want error, got nil")
	}
	if _, ok := err.(*FileOpenError); !ok {
		t.Fatalf("Open error = %v (%T), want *FileOpenError", err, err)
	}
}

func TestRowsToStringEmptyBuffer(t *testing.T) {
	e := New(nil, nil, 0)
	if got := e.RowsToString(); len(got) != 0 {
		t.Errorf("RowsToString() on an empty buffer = %q, want empty", got)
	}
}
