package pairing

import (
	"fmt"
	"slices"
	"strings"
)

// PairHistory answers whether two members met in an earlier round.
type PairHistory interface {
	AlreadyPaired(a, b string) bool
}

// RepeatPolicy decides how the matcher treats partners from PairHistory.
type RepeatPolicy string

const (
	// RepeatAllow ignores history.
	RepeatAllow RepeatPolicy = "allow"
	// RepeatAvoid tries every fresh candidate before any repeat partner.
	RepeatAvoid RepeatPolicy = "avoid"
	// RepeatExclude never pairs repeat partners.
	RepeatExclude RepeatPolicy = "exclude"
)

// ParseRepeatPolicy accepts allow, avoid or exclude in any case. Empty
// input means allow.
func ParseRepeatPolicy(value string) (RepeatPolicy, error) {
	switch RepeatPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", RepeatAllow:
		return RepeatAllow, nil
	case RepeatAvoid:
		return RepeatAvoid, nil
	case RepeatExclude:
		return RepeatExclude, nil
	default:
		return "", fmt.Errorf("repeat policy must be allow, avoid or exclude (got %q)", value)
	}
}

// MatchOptions configures the matcher's use of pairing history.
type MatchOptions struct {
	History PairHistory
	Policy  RepeatPolicy
}

func (o MatchOptions) active() bool {
	return o.History != nil && (o.Policy == RepeatAvoid || o.Policy == RepeatExclude)
}

// slotSet tracks the slots a member can still be booked at.
type slotSet map[int]struct{}

func newSlotSet(slots []int) slotSet {
	set := make(slotSet, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}

func (s slotSet) has(slot int) bool {
	_, ok := s[slot]
	return ok
}

// Match runs one greedy sweep over order and returns the pairs it formed.
//
// Each relation contributes at most one new pair: the first candidate that
// still has requests left, is still free at the candidate slot on both
// sides, and has not already been paired with this member. Forming a pair
// consumes one request and the slot on both sides. Members left with open
// requests become singles, in sweep order.
func Match(g *Graph, order []*Relation, algorithm string, opts MatchOptions) *Result {
	result := &Result{Algorithm: algorithm, Members: len(order)}
	if g == nil || g.Roster == nil {
		return result
	}
	roster := g.Roster
	result.roster = roster

	remaining := make([]int, len(roster.Members))
	open := make([]slotSet, len(roster.Members))
	for _, rel := range order {
		m := roster.Member(rel.Self)
		if m == nil {
			continue
		}
		remaining[rel.Self] = int(m.Requests)
		open[rel.Self] = newSlotSet(rel.Slots)
		result.TotalRequests += int(m.Requests)
	}

	for _, rel := range order {
		if remaining[rel.Self] <= 0 {
			continue
		}
		self := roster.Member(rel.Self)
		for _, c := range scanOrder(roster, self, rel, opts) {
			other := roster.Member(c.Member)
			if other == nil || remaining[c.Member] <= 0 {
				continue
			}
			if !open[rel.Self].has(c.Slot) || !open[c.Member].has(c.Slot) {
				continue
			}
			if result.hasPair(rel.Self, c.Member) {
				continue
			}
			if opts.Policy == RepeatExclude && opts.History != nil && opts.History.AlreadyPaired(self.Name, other.Name) {
				continue
			}
			result.Pairs = append(result.Pairs, Pair{A: rel.Self, B: c.Member, Slot: c.Slot})
			remaining[rel.Self]--
			remaining[c.Member]--
			delete(open[rel.Self], c.Slot)
			delete(open[c.Member], c.Slot)
			break
		}
	}

	for _, rel := range order {
		if remaining[rel.Self] != 0 {
			result.Singles = append(result.Singles, Single{Member: rel.Self, Remaining: remaining[rel.Self]})
		}
	}
	return result
}

// scanOrder returns rel's candidates in the order the matcher tries them.
// Under RepeatAvoid fresh partners come first; the relation is not modified.
func scanOrder(roster *Roster, self *Member, rel *Relation, opts MatchOptions) []Candidate {
	if !opts.active() || opts.Policy != RepeatAvoid {
		return rel.Candidates
	}
	ordered := slices.Clone(rel.Candidates)
	slices.SortStableFunc(ordered, func(a, b Candidate) int {
		return repeatRank(roster, self, a, opts.History) - repeatRank(roster, self, b, opts.History)
	})
	return ordered
}

func repeatRank(roster *Roster, self *Member, c Candidate, history PairHistory) int {
	if history.AlreadyPaired(self.Name, roster.Name(c.Member)) {
		return 1
	}
	return 0
}
