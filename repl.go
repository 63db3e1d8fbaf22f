package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ferrodb/pkg/logging"
	"ferrodb/pkg/parser/lexer"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
)

const (
	promptMain  = "lex> "
	promptCont  = "...> "
	historyFile = ".ferrodb_lex_history"
)

var (
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	replErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// startREPL reads statements from the terminal and prints their tokens. A
// statement ends at a ';', at an empty line, or as soon as it fails to lex.
func startREPL(config Configuration, stdout io.Writer) error {
	fmt.Fprintln(stdout, bannerStyle.Render("ferrodb lexer")+"  (:quit to exit)")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		stmt, ok := readStatement(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return nil
		}

		trimmed := strings.TrimSpace(stmt)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit" || trimmed == ":q":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(stmt, "\n", " "))

		err := writeTokens(stdout, stmt, config)
		var lexErr *lexer.LexError
		if errors.As(err, &lexErr) {
			fmt.Fprintln(stdout, replErrorStyle.Render(lexErr.DBError().Error()))
			continue
		}
		if err != nil {
			return err
		}
	}
}

func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logging.Warn("reading input failed", "error", err)
			}
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if statementComplete(b.String()) {
			return b.String(), true
		}
	}
}

// statementComplete decides whether the REPL should stop prompting for
// continuation lines.
func statementComplete(src string) bool {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" || strings.HasPrefix(trimmed, ":") || strings.HasSuffix(src, "\n") {
		return true
	}

	var last lexer.Token
	seen := false
	for item, err := range lexer.New(src).All() {
		if err != nil {
			return true
		}
		if item.Token.Kind != lexer.KindWhitespace {
			last, seen = item.Token, true
		}
	}
	return seen && last.Kind == lexer.KindSemicolon
}
