// Package config loads, normalizes, and validates pairup configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, picks up a .env file from the working directory, and
// applies PAIRUP_* environment overrides. Every knob the CLI needs (table
// layout, matching limits, history backend, message text) lives on Config.
package config
