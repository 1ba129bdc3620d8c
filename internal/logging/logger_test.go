package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pairup/internal/config"
	"pairup/internal/logging"
)

func TestParseLevelAcceptsNumericDebugLevels(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"SUMMARY", slog.LevelInfo},
		{"3", slog.LevelInfo},
		{"4", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"ALL", logging.LevelTrace},
		{"5", logging.LevelTrace},
		{"WARNING", slog.LevelWarn},
		{"2", slog.LevelWarn},
		{"1", slog.LevelError},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	none, err := logging.ParseLevel("NONE")
	if err != nil {
		t.Fatalf("ParseLevel(NONE) error: %v", err)
	}
	if none <= slog.LevelError {
		t.Fatalf("NONE should silence errors, got %v", none)
	}

	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg, "debug")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "pairing").Debug("attempt finished", logging.Int("pairs", 3))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "pairup.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(content))
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	if record["component"] != "pairing" {
		t.Fatalf("component = %v, want pairing", record["component"])
	}
	if record["level"] != "debug" {
		t.Fatalf("level = %v, want debug", record["level"])
	}
	if record["pairs"] != float64(3) {
		t.Fatalf("pairs = %v, want 3", record["pairs"])
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Info("contextual log")

	if !strings.Contains(buf.String(), `"run_id":"run-123"`) {
		t.Fatalf("expected run_id in output, got %q", buf.String())
	}

	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on bare context")
	}
	if logging.NewRunID() == logging.NewRunID() {
		t.Fatal("expected distinct run ids")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WarnWithContext(logger, "pin not found", "pin_unknown", logging.String(logging.FieldErrorHint, "check spelling"))

	out := buf.String()
	for _, want := range []string{`"event_type":"pin_unknown"`, `"error_hint":"check spelling"`, `"impact":`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %q", want, out)
		}
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.Trace(nil, "ignored")
}
