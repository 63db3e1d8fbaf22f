package logging

import (
	"log/slog"
)

// WithComponent creates a logger for one subsystem.
//
// Example:
//
//	log := logging.WithComponent("lexer")
//	log.Debug("tokenized input", "tokens", n)
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithInput creates a logger tagged with the name of the input being
// processed, usually a file path or "<stdin>".
//
// Example:
//
//	log := logging.WithInput("queries/report.sql")
//	log.Info("tokenizing")
func WithInput(name string) *slog.Logger {
	return GetLogger().With("input", name)
}

// WithLocation creates a logger carrying a source position.
func WithLocation(input string, row, col int) *slog.Logger {
	return GetLogger().With("input", input, "row", row, "col", col)
}

// WithError creates a logger with the error attached as a field.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Error("tokenization failed", "input", name)
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
