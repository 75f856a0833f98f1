package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeExprFile creates a temp file holding src and returns its path.
func writeExprFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expr.txt")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write expr file: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	os.Stdout = origStdout
	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	_ = r.Close()

	return string(out), fnErr
}
