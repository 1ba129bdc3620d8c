package pairing

import (
	"log/slog"

	"pairup/internal/logging"
)

// Candidate is a potential partner and the first slot shared with them.
type Candidate struct {
	Member MemberID
	Slot   int
}

// Relation is one eligible member and everyone they could be paired with.
type Relation struct {
	Self MemberID
	// Candidates keeps discovery order: by slot, then by row.
	Candidates []Candidate
	// Slots lists every slot at which Self is available.
	Slots []int
	// Dropped counts candidates refused once the ceiling was reached.
	Dropped int
	limit   int
}

func (r *Relation) addCandidate(c Candidate) bool {
	if r.limit > 0 && len(r.Candidates) >= r.limit {
		return false
	}
	r.Candidates = append(r.Candidates, c)
	return true
}

func (r *Relation) hasCandidate(id MemberID) bool {
	for _, c := range r.Candidates {
		if c.Member == id {
			return true
		}
	}
	return false
}

// Graph is the compatibility graph over the eligible members of a Roster.
type Graph struct {
	Roster *Roster
	// Relations are in construction order, which is roster order.
	Relations []*Relation
	// Dropped sums Relation.Dropped over every relation.
	Dropped int
	// DroppedMembers counts relations that lost at least one candidate.
	DroppedMembers int
}

// Member resolves a relation's owner.
func (g *Graph) Member(r *Relation) *Member {
	return g.Roster.Member(r.Self)
}

// Edges counts unordered candidate pairs.
func (g *Graph) Edges() int {
	seen := make(map[[2]MemberID]struct{})
	for _, rel := range g.Relations {
		for _, c := range rel.Candidates {
			seen[edgeKey(rel.Self, c.Member)] = struct{}{}
		}
	}
	return len(seen)
}

func edgeKey(a, b MemberID) [2]MemberID {
	if a > b {
		a, b = b, a
	}
	return [2]MemberID{a, b}
}

// GraphOptions tunes graph construction.
type GraphOptions struct {
	// MaxCandidates caps each relation's candidate list. Zero means no cap.
	MaxCandidates int
	Logger        *slog.Logger
}

// BuildGraph links every two eligible members sharing at least one slot.
// Each candidate is recorded once, at the earliest shared slot.
func BuildGraph(roster *Roster, opts GraphOptions) *Graph {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	g := &Graph{Roster: roster}
	if roster == nil {
		return g
	}

	eligible := make([]*Member, 0, len(roster.Members))
	for i := range roster.Members {
		if roster.Members[i].Eligible() {
			eligible = append(eligible, &roster.Members[i])
		}
	}

	for _, self := range eligible {
		rel := &Relation{
			Self:  self.ID,
			Slots: append([]int(nil), self.Slots...),
			limit: opts.MaxCandidates,
		}
		refused := map[MemberID]struct{}{}
		for _, slot := range self.Slots {
			for _, other := range eligible {
				if other.ID == self.ID || !other.AvailableAt(slot) || rel.hasCandidate(other.ID) {
					continue
				}
				if !rel.addCandidate(Candidate{Member: other.ID, Slot: slot}) {
					refused[other.ID] = struct{}{}
					continue
				}
				logging.Trace(logger, "candidate linked",
					logging.String("self", self.Name),
					logging.String("partner", other.Name),
					logging.Int("slot", slot),
				)
			}
		}
		rel.Dropped = len(refused)
		if rel.Dropped > 0 {
			g.Dropped += rel.Dropped
			g.DroppedMembers++
			logging.WarnWithContext(logger, "candidate ceiling reached", "candidate_capacity",
				logging.String("member", self.Name),
				logging.Int("max_candidates", opts.MaxCandidates),
				logging.Int("dropped", rel.Dropped),
				logging.String(logging.FieldErrorHint, "raise matching.max_candidates"),
				logging.String(logging.FieldImpact, "some compatible partners are not considered"),
			)
		}
		g.Relations = append(g.Relations, rel)
	}

	logger.Debug("compatibility graph built",
		logging.Int("relations", len(g.Relations)),
		logging.Int("edges", g.Edges()),
		logging.Int("dropped_candidates", g.Dropped),
	)
	return g
}
