package preflight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"pairup/internal/config"
	"pairup/internal/deps"
	"pairup/internal/history"
)

const historyCheckTimeout = 5 * time.Second

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckHistory opens the configured history backend and loads it once.
func CheckHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger) Result {
	name := "History (" + cfg.History.Backend + ")"
	if cfg.History.Backend == "none" {
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, historyCheckTimeout)
	defer cancel()

	store, err := history.Open(checkCtx, cfg, logger)
	if err != nil {
		return Result{Name: name, Detail: summarizeHistoryError(err)}
	}
	defer store.Close()

	book, err := store.Load(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeHistoryError(err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d weeks recorded", len(book.Weeks()))}
}

// CheckSystemDeps evaluates the external tools optional features use.
func CheckSystemDeps() []deps.Status {
	return deps.CheckBinaries([]deps.Requirement{deps.Graphviz()})
}

func summarizeHistoryError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out (backend unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timed out (backend unreachable)"
	}
	return err.Error()
}
