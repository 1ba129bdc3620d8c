// Package pairing turns a weekly availability table into conversation pairs.
//
// The pipeline is classify → extract → build → select. ExtractMembers reads
// one Member per data row, BuildGraph links every two eligible members that
// share a slot, and a Selector runs the greedy matcher under each ordering
// of the catalogue, keeping the attempt with the most pairs. Attempts stop
// early once every request has been satisfied.
//
// All randomness flows through a RandomSource so a fixed seed reproduces a
// run exactly.
package pairing
