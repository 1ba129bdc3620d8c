// Package sheet reads the availability schedule that drives a pairing run.
//
// A schedule is a plain grid of text cells: one header row naming the time
// slots, one row per member, and usually a trailing summary row that is not
// a member. Layout records where those boundaries sit so the rest of the
// system never hard-codes row or column offsets. Sheet is the CSV-backed
// implementation of Table; tests and other sources can supply their own.
package sheet
