package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Path != present {
		t.Fatalf("expected first requirement to resolve to %q, got %#v", present, results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", results[2].Detail)
	}
}

func TestResolveGraphviz(t *testing.T) {
	binDir := t.TempDir()
	t.Setenv("PATH", binDir)

	if _, err := Resolve(Graphviz()); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing without dot on PATH, got %v", err)
	}

	dot := filepath.Join(binDir, "dot")
	if err := os.WriteFile(dot, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write dot stub: %v", err)
	}
	path, err := Resolve(Graphviz())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != dot {
		t.Fatalf("Resolve = %q, want %q", path, dot)
	}
}
