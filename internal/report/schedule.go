package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pairup/internal/sheet"
)

// CellWidth is the display width of each column in WriteSchedule.
const CellWidth = 10

// WriteSchedule prints the raw table with every cell fitted to CellWidth
// display columns. Wide characters count double.
func WriteSchedule(w io.Writer, t sheet.Table, path string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "rows: %d\n", t.Rows())
	fmt.Fprintf(bw, "cols: %d\n", t.Cols())
	fmt.Fprintf(bw, "path: %s\n", path)
	fmt.Fprintln(bw, "data:")
	for row := 0; row < t.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < t.Cols(); col++ {
			line.WriteString(fitCell(t.Cell(row, col), CellWidth))
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}
	return bw.Flush()
}

// fitCell truncates s to width-1 display columns and pads to width, so
// adjacent cells always keep a gap.
func fitCell(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.FillRight(runewidth.Truncate(s, width-1, ""), width)
}
