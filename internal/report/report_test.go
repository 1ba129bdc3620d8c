package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairup/internal/deps"
	"pairup/internal/pairing"
	"pairup/internal/report"
	"pairup/internal/sheet"
)

func fixture(t *testing.T) *pairing.Outcome {
	t.Helper()
	tbl := sheet.New("week.csv", [][]string{
		{"name", "note", "Mon 20:00", "Tue 20:00"},
		{"amy", "", "1", "1"},
		{"bo", "", "1", ""},
		{"cy", "", "", "1"},
		{"total"},
	})
	out, err := pairing.Run(tbl, pairing.RunOptions{
		Layout:   sheet.DefaultLayout(),
		Priority: "SMALLEST_ROW_ID_PRIORITY",
		Rand:     pairing.NewRandomSource(1),
	})
	require.NoError(t, err)
	return out
}

func TestWriteText(t *testing.T) {
	out := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, out.Result, report.Message{Greeting: "hi", Alternatives: "bye"}))

	want := "hi\n" +
		"@amy -- @bo (Mon 20:00)\n" +
		"\n" +
		"As for\n" +
		"@cy\n" +
		"bye\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextWithoutPairs(t *testing.T) {
	tbl := sheet.New("week.csv", [][]string{{"name", "note", "Mon"}, {"amy", "", "1"}, {"total"}})
	out, err := pairing.Run(tbl, pairing.RunOptions{Layout: sheet.DefaultLayout(), Rand: pairing.NewRandomSource(1)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, out.Result, report.Message{Greeting: "hi"}))
	assert.Contains(t, buf.String(), "No pairs available to display.\n")
	assert.Contains(t, buf.String(), "As for\n@amy\n")
}

func TestSummarize(t *testing.T) {
	stats := report.Summarize(fixture(t).Result)
	assert.Equal(t, report.Stats{
		Algorithm:         "SMALLEST_ROW_ID_PRIORITY",
		Members:           3,
		Pairs:             1,
		Singles:           1,
		Requests:          3,
		SatisfiedRequests: 2,
		OpenRequests:      1,
		PairPercent:       33,
		SinglePercent:     33,
		SatisfiedPercent:  66,
	}, stats)

	empty := report.Summarize(&pairing.Result{})
	assert.Zero(t, empty.PairPercent)
	assert.True(t, empty.Perfect)
}

func TestDocumentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, report.NewDocument(fixture(t).Result)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "SMALLEST_ROW_ID_PRIORITY", decoded["algorithm"])
	assert.Equal(t, float64(3), decoded["total_requests"])
	assert.Equal(t, false, decoded["perfect"])
	assert.Equal(t, []any{map[string]any{"a": "amy", "b": "bo", "slot": float64(2), "time": "Mon 20:00"}}, decoded["pairs"])
	assert.Equal(t, []any{map[string]any{"name": "cy", "remaining": float64(1)}}, decoded["singles"])
	assert.NotContains(t, decoded, "warnings")
}

func TestWriteDOT(t *testing.T) {
	g := fixture(t).Graph

	var undirected bytes.Buffer
	require.NoError(t, report.WriteDOT(&undirected, g, false))
	text := undirected.String()
	assert.True(t, strings.HasPrefix(text, "graph G {\n  size=\"6,4\";\n  ratio=fill;\n"))
	assert.Contains(t, text, `m0 [label="amy: 1"];`)
	assert.Contains(t, text, `m0 -- m1 [label="Mon 20:00"];`)
	assert.Contains(t, text, `m0 -- m2 [label="Tue 20:00"];`)
	assert.Equal(t, 2, strings.Count(text, " -- "), "each pair is drawn once")

	var directed bytes.Buffer
	require.NoError(t, report.WriteDOT(&directed, g, true))
	assert.True(t, strings.HasPrefix(directed.String(), "digraph G {"))
	assert.Equal(t, 4, strings.Count(directed.String(), " -> "))
}

func TestWriteGraphFile(t *testing.T) {
	g := fixture(t).Graph
	dir := t.TempDir()

	dotPath := filepath.Join(dir, "out", "graph.dot")
	require.NoError(t, report.WriteGraphFile(context.Background(), g, dotPath, false))
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph G {"))

	t.Setenv("PATH", t.TempDir())
	err = report.WriteGraphFile(context.Background(), g, filepath.Join(dir, "graph.png"), false)
	require.ErrorIs(t, err, deps.ErrMissing)
}

func TestRenderImageUsesDot(t *testing.T) {
	bin := t.TempDir()
	// The stub copies stdin to the -o argument.
	script := "#!/bin/sh\ncat > \"$3\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "dot"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	out := filepath.Join(t.TempDir(), "graph.svg")
	require.NoError(t, report.RenderImage(context.Background(), []byte("graph G {}\n"), out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "graph G {}\n", string(data))

	require.Error(t, report.RenderImage(context.Background(), nil, filepath.Join(t.TempDir(), "graph")))
}

func TestWriteSchedule(t *testing.T) {
	tbl := sheet.New("week.csv", [][]string{
		{"name", "Mon"},
		{"a-very-long-name", "v"},
		{"王小明王小明", "1"},
	})
	var buf bytes.Buffer
	require.NoError(t, report.WriteSchedule(&buf, tbl, tbl.Path()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "rows: 3", lines[0])
	assert.Equal(t, "cols: 2", lines[1])
	assert.Equal(t, "path: week.csv", lines[2])
	assert.Equal(t, "name      Mon", lines[4])
	assert.Equal(t, "a-very-lo v", lines[5])
	assert.Equal(t, "王小明王  1", lines[6])
}
