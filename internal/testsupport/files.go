package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// ScheduleHeader labels the name, note and two slot columns of the fixture.
var ScheduleHeader = []string{"name", "note", "mon 20:00", "tue 20:00"}

// PerfectSchedule pairs alice with bob on monday and carol with dave on
// tuesday; every ordering finds both pairs.
func PerfectSchedule() [][]string {
	return [][]string{
		ScheduleHeader,
		{"alice", "", "1", ""},
		{"bob", "", "v", ""},
		{"carol", "", "", "1"},
		{"dave", "", "", "x"},
		{"total", "", "2", "2"},
	}
}

// WriteCSV writes rows to path, creating parent directories as needed.
func WriteCSV(t testing.TB, path string, rows [][]string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
