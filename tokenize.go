package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	dberror "ferrodb/pkg/error"
	"ferrodb/pkg/iterator"
	"ferrodb/pkg/logging"
	"ferrodb/pkg/parser/lexer"
	"ferrodb/pkg/ui"

	"golang.org/x/sync/errgroup"
)

const (
	formatText      = "text"
	formatJSON      = "json"
	formatHighlight = "highlight"
)

// errLexFailures reports that at least one input had a lexing error. The
// errors themselves have already been printed.
var errLexFailures = errors.New("one or more inputs failed to tokenize")

type fileResult struct {
	name   string
	output bytes.Buffer
	lexErr *lexer.LexError
}

// tokenizeFiles lexes every input concurrently and prints the results in
// argument order.
func tokenizeFiles(config Configuration, stdin io.Reader, stdout, stderr io.Writer) error {
	results := make([]fileResult, len(config.Inputs))

	var g errgroup.Group
	g.SetLimit(config.Jobs)
	for i, name := range config.Inputs {
		g.Go(func() error {
			res := &results[i]
			res.name = displayName(name)

			input, err := readInput(name, stdin)
			if err != nil {
				return err
			}

			logging.WithInput(res.name).Debug("tokenizing", "bytes", len(input))
			err = writeTokens(&res.output, input, config)

			var lexErr *lexer.LexError
			if errors.As(err, &lexErr) {
				res.lexErr = lexErr
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for i := range results {
		res := &results[i]
		if len(results) > 1 {
			fmt.Fprintf(stdout, "==> %s <==\n", res.name)
		}
		if _, err := res.output.WriteTo(stdout); err != nil {
			return err
		}
		if res.lexErr != nil {
			failed = true
			logging.WithLocation(res.name, res.lexErr.Loc.Row, res.lexErr.Loc.Col).
				Info("tokenization failed", "kind", res.lexErr.Kind)
			fmt.Fprintf(stderr, "%s:%d:%d: %v\n", res.name, res.lexErr.Loc.Row+1, res.lexErr.Loc.Col+1, res.lexErr.DBError())
		}
	}

	if failed {
		return errLexFailures
	}
	return nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", dberror.Wrap(err, dberror.CodeInputUnreadable, "ReadInput", "CLI").
			WithDetail(displayName(name))
	}
	return string(data), nil
}

// writeTokens tokenizes input and writes it to w in the configured format.
// A lexing error is returned after the tokens that preceded it were written.
func writeTokens(w io.Writer, input string, config Configuration) error {
	if config.Format == formatHighlight {
		out, err := ui.NewSQLHighlighter().Highlight(input)
		fmt.Fprintln(w, out)
		return err
	}

	var enc *json.Encoder
	if config.Format == formatJSON {
		enc = json.NewEncoder(w)
	}

	return iterator.ForEach[lexer.TokenItem](lexer.New(input), func(item lexer.TokenItem) error {
		if config.SkipWhitespace && item.Token.Kind == lexer.KindWhitespace {
			return nil
		}
		if enc != nil {
			return enc.Encode(ui.NewTokenRecord(item))
		}
		_, err := fmt.Fprintln(w, ui.FormatToken(item))
		return err
	})
}
