package pairing

import (
	"errors"
	"fmt"
	"log/slog"

	"pairup/internal/logging"
	"pairup/internal/sheet"
)

// RunOptions configures a full shuffle → extract → build → select pass.
type RunOptions struct {
	Layout sheet.Layout
	// Shuffle reorders member rows first. It applies only to *sheet.Sheet
	// tables, which it modifies in place.
	Shuffle bool
	// Pins switches to pinned mode when non-empty.
	Pins []string
	// Priority runs a single named ordering. Pins take precedence; an
	// unknown name falls back to the portfolio with a warning.
	Priority      string
	MaxMembers    int
	MaxCandidates int
	Rand          RandomSource
	Match         MatchOptions
	Logger        *slog.Logger
	Observer      Observer
}

// Outcome bundles every stage's output of a run.
type Outcome struct {
	Roster *Roster
	Graph  *Graph
	Result *Result
	Mode   SelectMode
}

// Run executes the whole pairing pipeline over t.
func Run(t sheet.Table, opts RunOptions) (*Outcome, error) {
	if t == nil {
		return nil, errors.New("run pairing: nil table")
	}
	logger := logging.NewComponentLogger(opts.Logger, "pairing")
	rng := opts.Rand
	if rng == nil {
		rng = NewRandomSource(0)
	}

	if opts.Shuffle {
		if s, ok := t.(*sheet.Sheet); ok {
			sheet.Shuffle(s, opts.Layout, rng)
		}
	}

	roster, err := ExtractMembers(t, opts.Layout, ExtractOptions{
		Pins:       opts.Pins,
		MaxMembers: opts.MaxMembers,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("run pairing: %w", err)
	}
	graph := BuildGraph(roster, GraphOptions{MaxCandidates: opts.MaxCandidates, Logger: logger})

	selector := &Selector{
		Rand:     rng,
		Match:    opts.Match,
		Logger:   logger,
		Observer: opts.Observer,
	}
	mode := ModePortfolio
	switch {
	case len(opts.Pins) > 0:
		mode = ModePinned
	case opts.Priority != "":
		named, err := Lookup(opts.Priority, rng)
		if err != nil {
			logging.WarnWithContext(logger, "unknown priority; trying the whole catalogue", "priority_unknown",
				logging.String("priority", opts.Priority),
				logging.String(logging.FieldErrorHint, "run `pairup algorithms` for valid names"),
				logging.String(logging.FieldImpact, "all orderings are tried instead"),
			)
			break
		}
		selector.Named = named
		mode = ModeNamed
	}

	result := selector.Select(graph, mode)
	return &Outcome{Roster: roster, Graph: graph, Result: result, Mode: mode}, nil
}
