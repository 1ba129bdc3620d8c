package pairing

import (
	"log/slog"
	"time"

	"pairup/internal/logging"
)

// SelectMode picks how many orderings a selection tries.
type SelectMode int

const (
	// ModePortfolio tries the catalogue and keeps the best attempt.
	ModePortfolio SelectMode = iota
	// ModePinned runs the ensure ordering once.
	ModePinned
	// ModeNamed runs Selector.Named once.
	ModeNamed
)

func (m SelectMode) String() string {
	switch m {
	case ModePinned:
		return "pinned"
	case ModeNamed:
		return "named"
	default:
		return "portfolio"
	}
}

// Observer is told about every attempt and the final selection.
type Observer interface {
	AttemptFinished(result *Result, kept bool)
	SelectionFinished(best *Result, attempts int, elapsed time.Duration)
}

// Selector runs the matcher under one or more orderings.
type Selector struct {
	// Catalogue defaults to Catalogue().
	Catalogue []Ordering
	// Named is the ordering ModeNamed runs.
	Named    Ordering
	Rand     RandomSource
	Match    MatchOptions
	Logger   *slog.Logger
	Observer Observer
}

// Select returns the best result for g under mode. The result is never nil.
func (s *Selector) Select(g *Graph, mode SelectMode) *Result {
	switch mode {
	case ModePinned:
		return s.single(g, EnsureOrdering(s.rand()))
	case ModeNamed:
		if s.Named != nil {
			return s.single(g, s.Named)
		}
		logging.WarnWithContext(s.logger(), "named mode without an ordering; trying the catalogue", "ordering_missing")
		return s.portfolio(g)
	default:
		return s.portfolio(g)
	}
}

func (s *Selector) portfolio(g *Graph) *Result {
	start := time.Now()
	logger := s.logger()
	rng := s.rand()
	catalogue := s.Catalogue
	if len(catalogue) == 0 {
		catalogue = Catalogue()
	}

	var best *Result
	attempts := 0
	for _, ordering := range catalogue {
		result := Match(g, ordering.Arrange(g), ordering.Name(), s.Match)
		attempts++

		kept := false
		switch {
		case best == nil:
			kept = true
		case len(result.Pairs) > len(best.Pairs):
			kept = true
		case len(result.Pairs) == len(best.Pairs):
			kept = rng.Intn(2) == 0
		}
		if kept {
			best = result
		}
		logger.Debug("attempt finished",
			logging.String(logging.FieldAlgorithm, result.Algorithm),
			logging.Int("pairs", len(result.Pairs)),
			logging.Int("singles", len(result.Singles)),
			logging.Bool("kept", kept),
		)
		if s.Observer != nil {
			s.Observer.AttemptFinished(result, kept)
		}
		if best.Perfect() {
			break
		}
	}
	if best == nil {
		best = Match(g, nil, "", s.Match)
	}

	s.finish(best, attempts, time.Since(start))
	return best
}

func (s *Selector) single(g *Graph, ordering Ordering) *Result {
	start := time.Now()
	result := Match(g, ordering.Arrange(g), ordering.Name(), s.Match)
	s.logger().Debug("attempt finished",
		logging.String(logging.FieldAlgorithm, result.Algorithm),
		logging.Int("pairs", len(result.Pairs)),
		logging.Int("singles", len(result.Singles)),
	)
	if s.Observer != nil {
		s.Observer.AttemptFinished(result, true)
	}
	s.finish(result, 1, time.Since(start))
	return result
}

func (s *Selector) finish(best *Result, attempts int, elapsed time.Duration) {
	s.logger().Info("selection finished",
		logging.String(logging.FieldAlgorithm, best.Algorithm),
		logging.Int("attempts", attempts),
		logging.Int("pairs", len(best.Pairs)),
		logging.Int("singles", len(best.Singles)),
		logging.Int("requests", best.TotalRequests),
		logging.Bool("perfect", best.Perfect()),
		logging.Duration("elapsed", elapsed),
	)
	if s.Observer != nil {
		s.Observer.SelectionFinished(best, attempts, elapsed)
	}
}

func (s *Selector) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}
	return s.Logger
}

func (s *Selector) rand() RandomSource {
	if s.Rand == nil {
		s.Rand = NewRandomSource(0)
	}
	return s.Rand
}
