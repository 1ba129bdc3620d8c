package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pairup/internal/deps"
	"pairup/internal/testsupport"
)

func TestShowPrintsTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"show", env.sheetPath}, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "rows: 6")
	requireContains(t, out, "cols: 4")
	requireContains(t, out, "alice")
	requireContains(t, out, "mon 20:00")
}

func TestGraphPrintsDOT(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"graph", env.sheetPath}, env.configPath)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	requireContains(t, out, "graph G {")
	requireContains(t, out, `"alice: 1"`)
	requireContains(t, out, "--")

	out, _, err = runCLI(t, []string{"graph", env.sheetPath, "--directed"}, env.configPath)
	if err != nil {
		t.Fatalf("graph --directed: %v", err)
	}
	requireContains(t, out, "digraph G {")
	requireContains(t, out, "->")
}

func TestGraphWritesDOTFile(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "week.dot")

	out, _, err := runCLI(t, []string{"graph", env.sheetPath, "-o", target}, env.configPath)
	if err != nil {
		t.Fatalf("graph -o: %v", err)
	}
	requireContains(t, out, "Wrote graph to")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	requireContains(t, string(data), "graph G {")
}

func TestGraphRendersImageWithGraphviz(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries("dot"))
	target := filepath.Join(env.baseDir, "week.png")

	if _, _, err := runCLI(t, []string{"graph", env.sheetPath, "-o", target}, env.configPath); err != nil {
		t.Fatalf("graph -o png: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read rendered graph: %v", err)
	}
	requireContains(t, string(data), "graph G {")
}

func TestGraphImageWithoutGraphviz(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PATH", filepath.Join(env.baseDir, "empty"))

	_, _, err := runCLI(t, []string{"graph", env.sheetPath, "-o", filepath.Join(env.baseDir, "week.svg")}, env.configPath)
	if !errors.Is(err, deps.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestAlgorithmsListsCatalogue(t *testing.T) {
	out, _, err := runCLI(t, []string{"algorithms"}, "")
	if err != nil {
		t.Fatalf("algorithms: %v", err)
	}
	requireContains(t, out, "LEAST_AVAILABILITY_PRIORITY")
	requireContains(t, out, "MOST_REQUEST_PRIORITY")
	requireContains(t, out, "ENSURE_LIST_PRIORITY")
}

func TestHistoryShowEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"history", "show", "--week", "2026-W01"}, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "No pairings recorded for 2026-W01")

	out, _, err = runCLI(t, []string{"history", "show", "--all"}, env.configPath)
	if err != nil {
		t.Fatalf("history show --all: %v", err)
	}
	requireContains(t, out, "No pairings recorded")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, []string{"--version"}, "")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	requireContains(t, out, "pairup version dev")
}
