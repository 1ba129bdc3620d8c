package pairing

// Pair is two members meeting at a shared slot.
type Pair struct {
	A    MemberID
	B    MemberID
	Slot int
}

// Single is a member whose requests were not all satisfied.
type Single struct {
	Member MemberID
	// Remaining is the number of requests still open.
	Remaining int
}

// Result is the outcome of one matching attempt.
type Result struct {
	Algorithm string
	// Members is the number of relations the attempt considered.
	Members       int
	TotalRequests int
	Pairs         []Pair
	Singles       []Single

	roster *Roster
}

// Roster returns the roster the result's member ids refer to.
func (r *Result) Roster() *Roster {
	return r.roster
}

// Perfect reports whether every request was satisfied.
func (r *Result) Perfect() bool {
	return r.TotalRequests == 2*len(r.Pairs)
}

// Unsatisfied sums the open requests of every single.
func (r *Result) Unsatisfied() int {
	total := 0
	for _, s := range r.Singles {
		total += s.Remaining
	}
	return total
}

// PairNames returns the names on both sides of p.
func (r *Result) PairNames(p Pair) (string, string) {
	return r.roster.Name(p.A), r.roster.Name(p.B)
}

func (r *Result) hasPair(a, b MemberID) bool {
	for _, p := range r.Pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}
	return false
}
