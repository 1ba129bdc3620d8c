package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"pairup/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = base
	cfg.History.Path = filepath.Join(base, "history.json")
	return &cfg
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckHistory_JSON(t *testing.T) {
	cfg := testConfig(t)
	result := CheckHistory(context.Background(), cfg, nil)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result.Detail != "0 weeks recorded" {
		t.Fatalf("detail = %q", result.Detail)
	}
}

func TestCheckHistory_InvalidDocument(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.History.Path, []byte(`{"2026-W01": "nope"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckHistory(context.Background(), cfg, nil)
	if result.Passed {
		t.Fatal("expected failure for invalid history document")
	}
}

func TestCheckHistory_Redis(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.History.Backend = "redis"
	cfg.History.RedisAddr = srv.Addr()

	result := CheckHistory(context.Background(), cfg, nil)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckHistory_RedisDown(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	cfg := testConfig(t)
	cfg.History.Backend = "redis"
	cfg.History.RedisAddr = addr

	result := CheckHistory(context.Background(), cfg, nil)
	if result.Passed {
		t.Fatal("expected failure for unreachable redis")
	}
}

func TestCheckHistory_Disabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.Backend = "none"
	result := CheckHistory(context.Background(), cfg, nil)
	if !result.Passed || result.Detail != "Disabled" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.MetricsFile = filepath.Join(t.TempDir(), "missing", "pairup.prom")

	results := RunAll(context.Background(), cfg, nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !Failed(results) {
		t.Fatal("missing metrics directory should fail")
	}
	for _, r := range results {
		if strings.HasPrefix(r.Name, "Metrics") && r.Passed {
			t.Fatalf("metrics check should fail: %+v", r)
		}
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil, nil); results != nil {
		t.Fatalf("expected nil, got %v", results)
	}
}

func TestCheckSystemDeps(t *testing.T) {
	statuses := CheckSystemDeps()
	if len(statuses) != 1 || statuses[0].Command != "dot" {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}
