// Package preflight provides readiness checks for the paths and services
// pairup depends on.
//
// `pairup config validate` runs them to show whether the state directory is
// writable, whether the configured history backend answers, and which
// optional tools are installed. Checks for disabled features are skipped.
package preflight
