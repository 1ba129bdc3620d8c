package report

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"pairup/internal/deps"
	"pairup/internal/fileutil"
	"pairup/internal/pairing"
)

// IsDOTPath reports whether path names a DOT source file rather than an
// image.
func IsDOTPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return true
	default:
		return false
	}
}

// WriteGraphFile writes g to path. DOT paths are written directly; any
// other extension is rendered by Graphviz using the extension as format.
func WriteGraphFile(ctx context.Context, g *pairing.Graph, path string, directed bool) error {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, g, directed); err != nil {
		return fmt.Errorf("build dot: %w", err)
	}
	if IsDOTPath(path) {
		if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write dot file: %w", err)
		}
		return nil
	}
	if err := fileutil.EnsureParent(path); err != nil {
		return fmt.Errorf("render graph: %w", err)
	}
	return RenderImage(ctx, buf.Bytes(), path)
}

// RenderImage pipes DOT source through `dot -T<ext> -o outPath`.
func RenderImage(ctx context.Context, source []byte, outPath string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")
	if format == "" {
		return fmt.Errorf("render graph: %s has no extension to pick an output format", outPath)
	}
	dot, err := deps.Resolve(deps.Graphviz())
	if err != nil {
		return fmt.Errorf("render graph: %w", err)
	}

	cmd := exec.CommandContext(ctx, dot, "-T"+format, "-o", outPath)
	cmd.Stdin = bytes.NewReader(source)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("render graph: dot: %s: %w", msg, err)
		}
		return fmt.Errorf("render graph: dot: %w", err)
	}
	return nil
}
