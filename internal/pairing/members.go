package pairing

import (
	"fmt"
	"log/slog"
	"strings"

	"pairup/internal/logging"
	"pairup/internal/sheet"
)

// PlaceholderName stands in for a row whose name cell is missing or blank.
const PlaceholderName = "--"

// NoSlot marks a member with no available slot.
const NoSlot = -1

// MemberID indexes Roster.Members.
type MemberID int

// Member is one schedule row.
type Member struct {
	ID   MemberID
	Row  int
	Name string
	// Requests comes from the first once/twice cell in the row.
	Requests     Requests
	Availability int
	// Slots lists every column at which the member is available, ascending.
	Slots        []int
	EarliestSlot int
	// EnsureScore is positive only for pinned members; higher goes first.
	EnsureScore int
}

// Eligible reports whether the member takes part in graph building.
func (m *Member) Eligible() bool {
	return m.Requests > None && m.Availability > 0
}

// AvailableAt reports whether the member is free at slot column col.
func (m *Member) AvailableAt(col int) bool {
	for _, s := range m.Slots {
		if s == col {
			return true
		}
		if s > col {
			return false
		}
	}
	return false
}

// Roster owns every extracted member; MemberIDs index Members.
type Roster struct {
	Members []Member
	Table   sheet.Table
	Layout  sheet.Layout
	// Warnings carries non-fatal extraction problems such as unknown pins.
	Warnings []string
	// Dropped counts rows beyond the member ceiling.
	Dropped int
}

// Member returns the member with the given id, or nil when out of range.
func (r *Roster) Member(id MemberID) *Member {
	if r == nil || id < 0 || int(id) >= len(r.Members) {
		return nil
	}
	return &r.Members[id]
}

// Name returns the display name for id.
func (r *Roster) Name(id MemberID) string {
	if m := r.Member(id); m != nil {
		return m.Name
	}
	return PlaceholderName
}

// Lookup finds the first member whose name matches exactly.
func (r *Roster) Lookup(name string) (*Member, bool) {
	for i := range r.Members {
		if r.Members[i].Name == name {
			return &r.Members[i], true
		}
	}
	return nil, false
}

// SlotLabel returns the human-readable label for a slot column.
func (r *Roster) SlotLabel(col int) string {
	if r == nil || r.Table == nil {
		return fmt.Sprintf("slot %d", col)
	}
	return r.Layout.SlotLabel(r.Table, col)
}

// ExtractOptions tunes member extraction.
type ExtractOptions struct {
	// Pins lists names whose pairing should be attempted first, highest
	// priority first.
	Pins []string
	// MaxMembers caps the roster; rows past it are counted and skipped.
	// Zero means no cap.
	MaxMembers int
	Logger     *slog.Logger
}

// ExtractMembers reads one Member per data row of t.
func ExtractMembers(t sheet.Table, layout sheet.Layout, opts ExtractOptions) (*Roster, error) {
	if t == nil {
		return nil, fmt.Errorf("extract members: nil table")
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("extract members: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	first, end := layout.DataRows(t)
	firstSlot, lastSlot := layout.SlotColumns(t)

	roster := &Roster{Table: t, Layout: layout}
	for row := first; row < end; row++ {
		if opts.MaxMembers > 0 && len(roster.Members) >= opts.MaxMembers {
			roster.Dropped = end - row
			logging.WarnWithContext(logger, "member ceiling reached; remaining rows skipped", "member_capacity",
				logging.Int("max_members", opts.MaxMembers),
				logging.Int("skipped_rows", roster.Dropped),
				logging.String(logging.FieldErrorHint, "raise matching.max_members"),
				logging.String(logging.FieldImpact, "skipped rows are never paired"),
			)
			break
		}
		roster.Members = append(roster.Members, readMember(t, layout, row, firstSlot, lastSlot, MemberID(len(roster.Members))))
	}

	applyPins(roster, opts.Pins, logger)

	logger.Debug("members extracted",
		logging.Int("members", len(roster.Members)),
		logging.Int("first_row", first),
		logging.Int("end_row", end),
		logging.Int("first_slot", firstSlot),
		logging.Int("last_slot", lastSlot),
	)
	return roster, nil
}

func readMember(t sheet.Table, layout sheet.Layout, row, firstSlot, lastSlot int, id MemberID) Member {
	m := Member{
		ID:           id,
		Row:          row,
		Name:         strings.TrimSpace(t.Cell(row, layout.NameColumn)),
		EarliestSlot: NoSlot,
	}
	if m.Name == "" {
		m.Name = PlaceholderName
	}
	for col := firstSlot; col <= lastSlot; col++ {
		if col == layout.NameColumn {
			continue
		}
		kind := Classify(t.Cell(row, col))
		if kind == None {
			continue
		}
		if m.Requests == None {
			m.Requests = kind
		}
		if m.EarliestSlot == NoSlot {
			m.EarliestSlot = col
		}
		m.Availability++
		m.Slots = append(m.Slots, col)
	}
	return m
}

// applyPins gives the first listed name the highest score and the last
// listed name a score of 1. Repeated names keep their first rank.
func applyPins(roster *Roster, pins []string, logger *slog.Logger) {
	var names []string
	seen := make(map[string]struct{}, len(pins))
	for _, pin := range pins {
		pin = strings.TrimSpace(pin)
		if pin == "" {
			continue
		}
		if _, ok := seen[pin]; ok {
			continue
		}
		seen[pin] = struct{}{}
		names = append(names, pin)
	}

	top := len(names) + 1
	for rank, name := range names {
		member, ok := roster.Lookup(name)
		if !ok {
			msg := fmt.Sprintf("pinned name %q not found", name)
			roster.Warnings = append(roster.Warnings, msg)
			logging.WarnWithContext(logger, "pinned name not found", "pin_unknown",
				logging.String("name", name),
				logging.String(logging.FieldErrorHint, "check the spelling against the name column"),
				logging.String(logging.FieldImpact, "name is matched without priority"),
			)
			continue
		}
		member.EnsureScore = top - (rank + 1)
	}
}
