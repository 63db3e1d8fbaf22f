// Package logging provides the process-wide structured logger for ferrodb.
//
// The package wraps [log/slog] and exposes a single global logger that is
// initialized once and retrieved with GetLogger. Packages obtain their logger
// here instead of building their own, so level and destination are decided in
// one place (the CLI flags).
//
// # Initialisation
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, Format: "json"}); err != nil {
//	    log.Fatal(err)
//	}
//
// Without an explicit Init, GetLogger lazily installs a WARN-level text
// logger on stderr, keeping stdout free for token output.
//
// # Context helpers
//
//	log := logging.WithComponent("lexer") // adds component field
//	log := logging.WithInput(path)        // adds input field
package logging
