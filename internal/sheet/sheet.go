package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty reports a source that holds no rows at all.
var ErrEmpty = errors.New("sheet is empty")

// Table is the read-only cell lookup the pairing core consumes.
type Table interface {
	// Cell returns the text at (row, col); out-of-range lookups return "".
	Cell(row, col int) string
	Rows() int
	Cols() int
}

// Sheet is a Table loaded from a CSV export.
type Sheet struct {
	path string
	cols int
	data [][]string
}

// New builds a Sheet from in-memory rows. Rows may have different lengths.
func New(path string, rows [][]string) *Sheet {
	s := &Sheet{path: path, data: rows}
	for _, row := range rows {
		if len(row) > s.cols {
			s.cols = len(row)
		}
	}
	return s
}

// ReadFile loads a CSV file.
func ReadFile(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer file.Close()
	return Read(file, path)
}

// Read parses CSV content. path is only kept for display.
func Read(r io.Reader, path string) (*Sheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	for _, record := range records {
		for i := range record {
			record[i] = strings.TrimRight(record[i], "\r")
		}
	}
	return New(path, records), nil
}

// Path returns the source the sheet was read from.
func (s *Sheet) Path() string { return s.path }

// Rows returns the number of rows including header and footer.
func (s *Sheet) Rows() int { return len(s.data) }

// Cols returns the width of the widest row.
func (s *Sheet) Cols() int { return s.cols }

// Cell returns the cell text or "" when the row is short.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.data) || col < 0 {
		return ""
	}
	line := s.data[row]
	if col >= len(line) {
		return ""
	}
	return line[col]
}

// Header returns the text of the first header row at col.
func (s *Sheet) Header(col int) string {
	return s.Cell(0, col)
}

func (s *Sheet) swapRows(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
}
