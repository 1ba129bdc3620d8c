// Package logging assembles the structured slog loggers used by pairup.
//
// It owns the console and JSON handlers, maps both the conventional level
// names and the numeric debug levels (0 through 5) onto slog levels, and
// exposes context helpers so every matching run carries its run ID. NewNop
// gives tests and library callers a logger that never fails.
package logging
