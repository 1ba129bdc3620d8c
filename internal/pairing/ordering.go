package pairing

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownOrdering is returned by Lookup for names outside the catalogue.
var ErrUnknownOrdering = errors.New("unknown ordering")

// EnsureOrderingName names the ordering used when members are pinned.
const EnsureOrderingName = "ENSURE_LIST_PRIORITY"

// Ordering arranges relations before a matching sweep.
type Ordering interface {
	Name() string
	// Compare orders a before b when negative.
	Compare(g *Graph, a, b *Relation) int
	// Arrange returns a fresh slice sorted from g's construction order.
	Arrange(g *Graph) []*Relation
}

type relationKey func(m *Member, r *Relation) int

type keyOrdering struct {
	name       string
	key        relationKey
	descending bool
}

func (o keyOrdering) Name() string { return o.name }

func (o keyOrdering) Compare(g *Graph, a, b *Relation) int {
	ka := o.key(g.Member(a), a)
	kb := o.key(g.Member(b), b)
	if o.descending {
		return cmp.Compare(kb, ka)
	}
	return cmp.Compare(ka, kb)
}

// Arrange sorts a clone of construction order rather than the previous
// attempt's order, so ties never carry over from one ordering to the next.
func (o keyOrdering) Arrange(g *Graph) []*Relation {
	out := slices.Clone(g.Relations)
	slices.SortStableFunc(out, func(a, b *Relation) int { return o.Compare(g, a, b) })
	return out
}

var (
	byAvailability = func(m *Member, _ *Relation) int { return m.Availability }
	byRow          = func(m *Member, _ *Relation) int { return m.Row }
	byEarliestSlot = func(m *Member, _ *Relation) int { return m.EarliestSlot }
	byRequests     = func(m *Member, _ *Relation) int { return int(m.Requests) }
	byPartners     = func(_ *Member, r *Relation) int { return len(r.Candidates) }
)

// Catalogue returns the fixed list of orderings the portfolio tries, in
// the order it tries them.
func Catalogue() []Ordering {
	return []Ordering{
		keyOrdering{name: "LEAST_AVAILABILITY_PRIORITY", key: byAvailability},
		keyOrdering{name: "MOST_AVAILABILITY_PRIORITY", key: byAvailability, descending: true},
		keyOrdering{name: "SMALLEST_ROW_ID_PRIORITY", key: byRow},
		keyOrdering{name: "LARGEST_ROW_ID_PRIORITY", key: byRow, descending: true},
		keyOrdering{name: "EARLIEST_AVAILABLE_SLOT_PRIORITY", key: byEarliestSlot},
		keyOrdering{name: "LEAST_REQUEST_PRIORITY", key: byRequests},
		keyOrdering{name: "LATEST_AVAILABLE_SLOT_PRIORITY", key: byEarliestSlot, descending: true},
		keyOrdering{name: "LEAST_PARTNER_PRIORITY", key: byPartners},
		keyOrdering{name: "MOST_PARTNER_PRIORITY", key: byPartners, descending: true},
		keyOrdering{name: "MOST_REQUEST_PRIORITY", key: byRequests, descending: true},
	}
}

// ensureOrdering puts pinned members first, highest score first, and
// breaks ties uniformly at random.
type ensureOrdering struct {
	rng RandomSource
}

// EnsureOrdering returns the ordering used for pinned runs. A nil rng is
// replaced by a clock-seeded source.
func EnsureOrdering(rng RandomSource) Ordering {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return ensureOrdering{rng: rng}
}

func (ensureOrdering) Name() string { return EnsureOrderingName }

func (ensureOrdering) Compare(g *Graph, a, b *Relation) int {
	return cmp.Compare(g.Member(b).EnsureScore, g.Member(a).EnsureScore)
}

func (o ensureOrdering) Arrange(g *Graph) []*Relation {
	out := slices.Clone(g.Relations)
	o.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	slices.SortStableFunc(out, func(a, b *Relation) int { return o.Compare(g, a, b) })
	return out
}

// Lookup resolves an ordering by name, case-insensitively. The ensure
// ordering is accepted as well as every catalogue entry; rng only matters
// for it, and nil means a clock-seeded source.
func Lookup(name string, rng RandomSource) (Ordering, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	if want == EnsureOrderingName {
		return EnsureOrdering(rng), nil
	}
	for _, o := range Catalogue() {
		if o.Name() == want {
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}
