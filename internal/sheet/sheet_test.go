package sheet_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pairup/internal/sheet"
)

func TestReadHandlesBOMAndShortRows(t *testing.T) {
	input := "\xef\xbb\xbfName,Note,Mon 20:00,Mon 21:00\r\nAlice,,1,\r\nBob\r\nTotal,,1,0\r\n"
	s, err := sheet.Read(strings.NewReader(input), "week.csv")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if s.Rows() != 4 {
		t.Fatalf("unexpected rows: %d", s.Rows())
	}
	if s.Cols() != 4 {
		t.Fatalf("unexpected cols: %d", s.Cols())
	}
	if got := s.Header(0); got != "Name" {
		t.Fatalf("BOM not stripped from header: %q", got)
	}
	if got := s.Cell(1, 2); got != "1" {
		t.Fatalf("unexpected cell: %q", got)
	}
	if got := s.Cell(2, 3); got != "" {
		t.Fatalf("short row should read as empty, got %q", got)
	}
	if got := s.Cell(99, 0); got != "" {
		t.Fatalf("out of range row should read as empty, got %q", got)
	}
	if s.Path() != "week.csv" {
		t.Fatalf("unexpected path: %q", s.Path())
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := sheet.Read(strings.NewReader(""), "empty.csv")
	if !errors.Is(err, sheet.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := sheet.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLayoutRanges(t *testing.T) {
	s := sheet.New("", [][]string{
		{"Name", "Note", "A", "B", "C"},
		{"x"},
		{"y"},
		{"total"},
	})
	layout := sheet.DefaultLayout()

	first, end := layout.DataRows(s)
	if first != 1 || end != 3 {
		t.Fatalf("unexpected data rows [%d,%d)", first, end)
	}
	lo, hi := layout.SlotColumns(s)
	if lo != 2 || hi != 4 {
		t.Fatalf("unexpected slot columns [%d,%d]", lo, hi)
	}

	layout.LastSlotColumn = 3
	if _, hi := layout.SlotColumns(s); hi != 3 {
		t.Fatalf("last slot column not honoured: %d", hi)
	}
	if got := layout.SlotLabel(s, 2); got != "A" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := layout.SlotLabel(s, 9); got != "slot 9" {
		t.Fatalf("unexpected fallback label %q", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sheet.Layout)
		ok     bool
	}{
		{name: "default", mutate: func(*sheet.Layout) {}, ok: true},
		{name: "negative header", mutate: func(l *sheet.Layout) { l.HeaderRows = -1 }},
		{name: "slot equals name", mutate: func(l *sheet.Layout) { l.FirstSlotColumn = 0 }},
		{name: "last before first", mutate: func(l *sheet.Layout) { l.LastSlotColumn = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := sheet.DefaultLayout()
			tc.mutate(&layout)
			err := layout.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestShuffleKeepsHeaderAndFooter(t *testing.T) {
	rows := [][]string{{"Name"}}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		rows = append(rows, []string{name})
	}
	rows = append(rows, []string{"footer"})
	s := sheet.New("", rows)

	sheet.Shuffle(s, sheet.DefaultLayout(), rand.New(rand.NewSource(7)))

	if s.Cell(0, 0) != "Name" || s.Cell(s.Rows()-1, 0) != "footer" {
		t.Fatalf("header/footer moved: %q / %q", s.Cell(0, 0), s.Cell(s.Rows()-1, 0))
	}
	seen := map[string]bool{}
	for row := 1; row < s.Rows()-1; row++ {
		seen[s.Cell(row, 0)] = true
	}
	if len(seen) != 6 {
		t.Fatalf("rows lost during shuffle: %v", seen)
	}
}
