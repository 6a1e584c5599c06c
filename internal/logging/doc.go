// Package logging constructs the slog loggers used throughout
// callboard. It provides a human-oriented console handler and a JSON
// handler for machine consumption, selected by configuration.
package logging
