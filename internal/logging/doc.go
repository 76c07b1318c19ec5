// Package logging constructs the slog loggers used across chirpbench. It
// offers a human-oriented console handler and a machine-oriented JSON
// handler, selected by configuration, plus shared attribute helpers so field
// names stay consistent between the sweep, the evaluator, and the CLI.
package logging
