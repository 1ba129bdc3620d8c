package history

import (
	"fmt"
	"time"
)

// CurrentWeek formats the ISO week containing now, e.g. "2026-W07".
func CurrentWeek(now time.Time) string {
	year, week := now.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// Gate answers the matcher's repeat-partner question for one week.
type Gate struct {
	Book *Book
	Week string
}

// AlreadyPaired implements pairing.PairHistory.
func (g Gate) AlreadyPaired(a, b string) bool {
	if g.Book == nil {
		return false
	}
	return g.Book.AlreadyPaired(g.Week, a, b)
}
