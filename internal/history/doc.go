// Package history remembers who was paired with whom, week by week.
//
// A Book holds week → host → partners in memory. Stores persist it: a
// flock-guarded JSON file validated against an embedded schema, a SQLite
// table, or Redis sets. Gate adapts a Book and a week to the matcher's
// PairHistory interface.
package history
