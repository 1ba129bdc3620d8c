package sheet

// Shuffler is the subset of *math/rand.Rand used to reorder rows.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle reorders the member rows in place, leaving header and footer rows
// where they are.
func Shuffle(s *Sheet, layout Layout, rng Shuffler) {
	if s == nil || rng == nil {
		return
	}
	first, end := layout.DataRows(s)
	n := end - first
	if n < 2 {
		return
	}
	rng.Shuffle(n, func(i, j int) {
		s.swapRows(first+i, first+j)
	})
}
