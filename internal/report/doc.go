// Package report renders pairing runs: the announcement text, summary
// statistics, a JSON document, the raw schedule, and Graphviz exports of the
// compatibility graph.
package report
