// Package main hosts the pairup CLI entrypoint and command graph.
//
// The Cobra command tree reads a weekly availability table, runs the pairing
// pipeline and prints the announcement, statistics, relation graphs and
// pairing history. It centralizes configuration resolution and logger setup
// so subcommands only deal with flags and output.
//
// Keep this package lean: matching, persistence and rendering live in the
// internal packages and are surfaced here through commands or flags.
package main
