package report

import "pairup/internal/pairing"

// Stats summarizes a result. Percentages are whole numbers, rounded down.
type Stats struct {
	Algorithm         string `json:"algorithm"`
	Members           int    `json:"members"`
	Pairs             int    `json:"pairs"`
	Singles           int    `json:"singles"`
	Requests          int    `json:"requests"`
	SatisfiedRequests int    `json:"satisfied_requests"`
	OpenRequests      int    `json:"open_requests"`
	PairPercent       int    `json:"pair_percent"`
	SinglePercent     int    `json:"single_percent"`
	SatisfiedPercent  int    `json:"satisfied_percent"`
	Perfect           bool   `json:"perfect"`
}

// Summarize computes Stats for result.
func Summarize(result *pairing.Result) Stats {
	s := Stats{
		Algorithm:         result.Algorithm,
		Members:           result.Members,
		Pairs:             len(result.Pairs),
		Singles:           len(result.Singles),
		Requests:          result.TotalRequests,
		SatisfiedRequests: 2 * len(result.Pairs),
		OpenRequests:      result.Unsatisfied(),
		Perfect:           result.Perfect(),
	}
	s.PairPercent = percent(s.Pairs, s.Members)
	s.SinglePercent = percent(s.Singles, s.Members)
	s.SatisfiedPercent = percent(s.SatisfiedRequests, s.Requests)
	return s
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return part * 100 / whole
}
