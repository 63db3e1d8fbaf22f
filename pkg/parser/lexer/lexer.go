package lexer

import (
	"errors"
	"io"
	"iter"
	"log/slog"

	"ferrodb/pkg/logging"
)

// Lexer produces the tokens of one input, one at a time. It is single use:
// build a new Lexer for every input.
type Lexer struct {
	src *charSource
	m   *machine

	// A single character can complete two tokens; the second waits here.
	pending    TokenItem
	hasPending bool

	done   bool
	count  int
	logger *slog.Logger
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// New creates a Lexer over input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		src: newCharSource(input),
		m:   newMachine(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.WithComponent("lexer")
	}
	return l
}

// Next returns the next token. When the input is malformed it returns a
// *LexError once; after the last token or the error it returns io.EOF.
func (l *Lexer) Next() (TokenItem, error) {
	if l.hasPending {
		l.hasPending = false
		return l.deliver(l.pending), nil
	}
	if l.done {
		return TokenItem{}, io.EOF
	}

	for {
		c, ok := l.src.next()
		if !ok {
			l.done = true
			l.logger.Debug("tokenized input", "tokens", l.count)
			return TokenItem{}, io.EOF
		}

		items, err := l.m.step(c)
		if err != nil {
			l.done = true
			l.logger.Debug("tokenization failed", "error", err, "tokens", l.count)
			return TokenItem{}, err
		}

		switch len(items) {
		case 0:
			continue
		case 1:
			return l.deliver(items[0]), nil
		case 2:
			l.pending, l.hasPending = items[1], true
			return l.deliver(items[0]), nil
		default:
			panic("lexer: more than two tokens completed by one character")
		}
	}
}

func (l *Lexer) deliver(item TokenItem) TokenItem {
	l.count++
	return item
}

// All returns the remaining tokens as a sequence. A lexing error is yielded
// once as the final element. Breaking out of the loop early is safe.
func (l *Lexer) All() iter.Seq2[TokenItem, error] {
	return func(yield func(TokenItem, error) bool) {
		for {
			item, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(TokenItem{}, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Tokenize lexes input in full. On failure it returns the tokens produced
// before the error along with the error.
func Tokenize(input string, opts ...Option) ([]TokenItem, error) {
	var items []TokenItem
	for item, err := range New(input, opts...).All() {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
