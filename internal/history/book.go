package history

import (
	"slices"
	"strings"
	"sync"
)

// NamePair is two members who met.
type NamePair struct {
	A string
	B string
}

// HostRecord lists everyone a host was paired with in one week.
type HostRecord struct {
	Host          string   `json:"host"`
	AlreadyPaired []string `json:"alreadyPaired"`
}

// Document is the serialized form of a Book, keyed by week.
type Document map[string][]HostRecord

// Book is an in-memory pairing history, safe for concurrent use.
type Book struct {
	mu    sync.RWMutex
	weeks map[string]map[string]map[string]struct{}
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{weeks: make(map[string]map[string]map[string]struct{})}
}

// AlreadyPaired reports whether x and y met in week. Either member's host
// record counts, so the answer does not depend on argument order.
func (b *Book) AlreadyPaired(week, x, y string) bool {
	week, x, y = strings.TrimSpace(week), strings.TrimSpace(x), strings.TrimSpace(y)
	b.mu.RLock()
	defer b.mu.RUnlock()
	hosts := b.weeks[week]
	if _, ok := hosts[x][y]; ok {
		return true
	}
	_, ok := hosts[y][x]
	return ok
}

// Record adds pairs to week in both directions and returns how many pairs
// were new.
func (b *Book) Record(week string, pairs []NamePair) int {
	week = strings.TrimSpace(week)
	b.mu.Lock()
	defer b.mu.Unlock()

	added := 0
	for _, p := range pairs {
		x, y := strings.TrimSpace(p.A), strings.TrimSpace(p.B)
		if x == "" || y == "" || x == y {
			continue
		}
		if b.link(week, x, y) {
			added++
		}
		b.link(week, y, x)
	}
	return added
}

func (b *Book) link(week, host, partner string) bool {
	hosts, ok := b.weeks[week]
	if !ok {
		hosts = make(map[string]map[string]struct{})
		b.weeks[week] = hosts
	}
	partners, ok := hosts[host]
	if !ok {
		partners = make(map[string]struct{})
		hosts[host] = partners
	}
	if _, seen := partners[partner]; seen {
		return false
	}
	partners[partner] = struct{}{}
	return true
}

// Week returns week's records sorted by host, partners sorted too.
func (b *Book) Week(week string) []HostRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.weekLocked(strings.TrimSpace(week))
}

func (b *Book) weekLocked(week string) []HostRecord {
	hosts := b.weeks[week]
	records := make([]HostRecord, 0, len(hosts))
	for host, partners := range hosts {
		names := make([]string, 0, len(partners))
		for name := range partners {
			names = append(names, name)
		}
		slices.Sort(names)
		records = append(records, HostRecord{Host: host, AlreadyPaired: names})
	}
	slices.SortFunc(records, func(x, y HostRecord) int { return strings.Compare(x.Host, y.Host) })
	return records
}

// Weeks returns every recorded week in ascending order.
func (b *Book) Weeks() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	weeks := make([]string, 0, len(b.weeks))
	for week := range b.weeks {
		weeks = append(weeks, week)
	}
	slices.Sort(weeks)
	return weeks
}

// Document snapshots the book for serialization.
func (b *Book) Document() Document {
	b.mu.RLock()
	defer b.mu.RUnlock()
	doc := make(Document, len(b.weeks))
	for week := range b.weeks {
		doc[week] = b.weekLocked(week)
	}
	return doc
}

// FromDocument rebuilds a Book. Host records are taken as written, so a
// one-sided record stays one-sided in Document; lookups still match both ways.
func FromDocument(doc Document) *Book {
	b := NewBook()
	for week, records := range doc {
		week = strings.TrimSpace(week)
		for _, rec := range records {
			host := strings.TrimSpace(rec.Host)
			if host == "" {
				continue
			}
			for _, partner := range rec.AlreadyPaired {
				if partner = strings.TrimSpace(partner); partner != "" {
					b.link(week, host, partner)
				}
			}
		}
	}
	return b
}
