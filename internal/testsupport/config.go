package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pairup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Shuffling is off and the seed fixed so runs are reproducible.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.History.Path = filepath.Join(cfgVal.Paths.StateDir, "history.json")
	cfgVal.Matching.Shuffle = false
	cfgVal.Matching.Seed = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistoryBackend switches the history backend, pointing file backends at
// the temp state directory.
func WithHistoryBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Backend = backend
		switch backend {
		case "sqlite":
			b.cfg.History.Path = filepath.Join(b.cfg.Paths.StateDir, "history.db")
		case "json":
			b.cfg.History.Path = filepath.Join(b.cfg.Paths.StateDir, "history.json")
		}
	}
}

// WithRepeatPolicy sets matching.repeat_policy.
func WithRepeatPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.RepeatPolicy = policy
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. Each stub copies stdin to the file named by its last
// argument, which is enough to stand in for `dot -Tpng -o out`.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"dot"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nfor last; do :; done\ncat > \"$last\"\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}

// WriteConfig renders cfg as a TOML file the loader accepts.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
state_dir = %q
log_dir = %q
metrics_file = %q

[matching]
seed = %d
shuffle = %t
repeat_policy = %q

[history]
backend = %q
path = %q
`,
		cfg.Paths.StateDir,
		cfg.Paths.LogDir,
		cfg.Paths.MetricsFile,
		cfg.Matching.Seed,
		cfg.Matching.Shuffle,
		cfg.Matching.RepeatPolicy,
		cfg.History.Backend,
		cfg.History.Path,
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
