package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairup/internal/metrics"
	"pairup/internal/pairing"
	"pairup/internal/sheet"
)

func TestRecorderObservesSelection(t *testing.T) {
	tbl := sheet.New("week.csv", [][]string{
		{"name", "note", "Mon", "Tue"},
		{"a", "", "1", ""},
		{"b", "", "1", ""},
		{"c", "", "", "1"},
		{"d", "", "", "1"},
		{"total"},
	})
	rec := metrics.NewRecorder()
	out, err := pairing.Run(tbl, pairing.RunOptions{
		Layout:   sheet.DefaultLayout(),
		Rand:     pairing.NewRandomSource(5),
		Observer: rec,
	})
	require.NoError(t, err)
	require.True(t, out.Result.Perfect())

	expected := `
# HELP pairup_attempts_total Matching attempts run, by ordering
# TYPE pairup_attempts_total counter
pairup_attempts_total{algorithm="LEAST_AVAILABILITY_PRIORITY"} 1
# HELP pairup_pairs Pairs in the selected result
# TYPE pairup_pairs gauge
pairup_pairs 2
# HELP pairup_perfect_match 1 when every request was satisfied
# TYPE pairup_perfect_match gauge
pairup_perfect_match 1
# HELP pairup_requests Total requests across all members
# TYPE pairup_requests gauge
pairup_requests 4
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected),
		"pairup_attempts_total", "pairup_pairs", "pairup_perfect_match", "pairup_requests"))

	path := filepath.Join(t.TempDir(), "textfile", "pairup.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pairup_selection_duration_seconds_count 1")
	assert.Contains(t, string(data), "pairup_singles 0")
}
