package sheet

import (
	"fmt"
	"strings"
)

// Layout describes where member data lives inside a Table.
type Layout struct {
	NameColumn      int
	HeaderRows      int
	FooterRows      int
	FirstSlotColumn int
	// LastSlotColumn is inclusive; 0 means the last column of the table.
	LastSlotColumn int
}

// DefaultLayout matches the weekly schedule export: names in column 0, a
// comment column, slots from column 2, one header row and one footer row.
func DefaultLayout() Layout {
	return Layout{
		NameColumn:      0,
		HeaderRows:      1,
		FooterRows:      1,
		FirstSlotColumn: 2,
	}
}

// DataRows returns the half-open row range [first, end) holding members.
func (l Layout) DataRows(t Table) (int, int) {
	first := l.HeaderRows
	end := t.Rows() - l.FooterRows
	if end < first {
		end = first
	}
	return first, end
}

// SlotColumns returns the inclusive slot column range. last < first means
// the table has no slot columns.
func (l Layout) SlotColumns(t Table) (int, int) {
	last := t.Cols() - 1
	if l.LastSlotColumn > 0 && l.LastSlotColumn < last {
		last = l.LastSlotColumn
	}
	return l.FirstSlotColumn, last
}

// SlotLabel returns the header text for a slot column.
func (l Layout) SlotLabel(t Table, col int) string {
	if l.HeaderRows > 0 {
		if label := strings.TrimSpace(t.Cell(0, col)); label != "" {
			return label
		}
	}
	return fmt.Sprintf("slot %d", col)
}

// Validate rejects layouts that cannot address any member data.
func (l Layout) Validate() error {
	switch {
	case l.NameColumn < 0:
		return fmt.Errorf("sheet.name_column must be >= 0")
	case l.HeaderRows < 0 || l.FooterRows < 0:
		return fmt.Errorf("sheet.header_rows and sheet.footer_rows must be >= 0")
	case l.FirstSlotColumn < 0:
		return fmt.Errorf("sheet.first_slot_column must be >= 0")
	case l.FirstSlotColumn == l.NameColumn:
		return fmt.Errorf("sheet.first_slot_column must differ from sheet.name_column")
	case l.LastSlotColumn != 0 && l.LastSlotColumn < l.FirstSlotColumn:
		return fmt.Errorf("sheet.last_slot_column must be 0 or >= first_slot_column")
	}
	return nil
}
