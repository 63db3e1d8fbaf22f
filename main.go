package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	dberror "ferrodb/pkg/error"
	"ferrodb/pkg/logging"
	"ferrodb/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Configuration is everything the command line controls.
type Configuration struct {
	Format         string
	SkipWhitespace bool
	Interactive    bool
	Jobs           int
	LogLevel       string
	LogPath        string
	LogFormat      string
	Inputs         []string
}

const (
	exitOK       = 0
	exitLexError = 1
	exitFailure  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config, err := parseArguments(args, stderr)
	if err != nil {
		return exitFailure
	}

	if err := initLogging(config, stderr); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer logging.Close()

	switch {
	case config.Interactive:
		err = startInteractiveMode(config)
	case len(config.Inputs) > 0:
		err = tokenizeFiles(config, stdin, stdout, stderr)
	case isTerminal(stdin):
		err = startREPL(config, stdout)
	default:
		err = tokenizeFiles(Configuration{
			Format:         config.Format,
			SkipWhitespace: config.SkipWhitespace,
			Jobs:           1,
			Inputs:         []string{"-"},
		}, stdin, stdout, stderr)
	}

	return reportError(err, stderr)
}

// parseArguments processes command-line flags
func parseArguments(args []string, stderr io.Writer) (Configuration, error) {
	var config Configuration

	fs := flag.NewFlagSet("ferrodb-lex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ferrodb-lex [flags] [file ...]")
		fmt.Fprintln(stderr, "Tokenizes SQL files (\"-\" for stdin), starts a REPL on a terminal, or a TUI with -tui.")
		fs.PrintDefaults()
	}

	fs.StringVar(&config.Format, "format", formatText, "output format: text, json or highlight")
	fs.BoolVar(&config.SkipWhitespace, "skip-whitespace", false, "omit whitespace tokens from the output")
	fs.BoolVar(&config.Interactive, "tui", false, "start the interactive tokenizer")
	fs.IntVar(&config.Jobs, "jobs", runtime.NumCPU(), "number of files tokenized in parallel")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&config.LogPath, "log-file", "", "write logs to this file instead of stderr")
	fs.StringVar(&config.LogFormat, "log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return config, err
	}
	config.Inputs = fs.Args()

	switch config.Format {
	case formatText, formatJSON, formatHighlight:
	default:
		err := fmt.Errorf("unknown format %q", config.Format)
		fmt.Fprintln(stderr, err)
		return config, err
	}
	if config.Jobs < 1 {
		config.Jobs = 1
	}

	return config, nil
}

func initLogging(config Configuration, stderr io.Writer) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return dberror.Wrap(err, dberror.CodeLoggingSetup, "ParseLevel", "CLI")
	}

	writer := stderr
	if config.Interactive && config.LogPath == "" {
		// The TUI owns the terminal.
		writer = io.Discard
	}

	err = logging.Init(logging.Config{
		Level:      level,
		OutputPath: config.LogPath,
		Writer:     writer,
		Format:     config.LogFormat,
	})
	if err != nil {
		return dberror.Wrap(err, dberror.CodeLoggingSetup, "Init", "CLI")
	}
	return nil
}

// startInteractiveMode launches the Bubble Tea UI, preloaded with the first
// input file when one is given.
func startInteractiveMode(config Configuration) error {
	initial := ""
	if len(config.Inputs) > 0 {
		data, err := os.ReadFile(config.Inputs[0])
		if err != nil {
			return dberror.Wrap(err, dberror.CodeInputUnreadable, "ReadFile", "CLI")
		}
		initial = string(data)
	}

	p := tea.NewProgram(ui.NewModel(initial), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return dberror.New(dberror.ErrCategorySystem, dberror.CodeTerminal, "error running program").
			WithContext("Run", "TUI").
			WithCause(err)
	}
	return nil
}

// reportError prints err and maps it to the process exit status.
func reportError(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	if errors.Is(err, errLexFailures) {
		return exitLexError
	}

	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		logging.WithError(err).Error("command failed", "code", dbErr.Code, "component", dbErr.Component)
	}
	fmt.Fprintln(stderr, err)
	return exitFailure
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		logging.Debug("cannot stat input", "input", f.Name(), "error", err)
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
