package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := &FileWriter{Path: path}

	if err := w.WriteOutput([]byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteOutput([]byte("second")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestFileWriterBadDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "missing", "out.txt")}
	if err := w.WriteOutput([]byte("x")); err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
}

func TestMemWriter(t *testing.T) {
	w := &MemWriter{}
	if err := w.WriteOutput([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteOutput([]byte("xy")); err != nil {
		t.Fatal(err)
	}
	if string(w.Buf) != "xy" {
		t.Errorf("Buf = %q, want %q", w.Buf, "xy")
	}
}
