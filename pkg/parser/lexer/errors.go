package lexer

import (
	"errors"
	"fmt"

	dberror "ferrodb/pkg/error"
)

// ErrorKind identifies why lexing stopped.
type ErrorKind int

const (
	// UnterminatedString: a string literal hit a newline or the end of input
	// before its closing quote.
	UnterminatedString ErrorKind = iota
	// InvalidNumber: a numeric literal contained a second '.'.
	InvalidNumber
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidNumber      = errors.New("invalid numeric, found second '.'")
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return "Unknown"
	}
}

// LexError terminates a tokenization run. Loc is the opening quote for
// strings and the first character of the literal for numbers.
type LexError struct {
	Kind ErrorKind
	Loc  Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v at %s", e.Unwrap(), e.Loc)
}

func (e *LexError) Unwrap() error {
	if e.Kind == InvalidNumber {
		return ErrInvalidNumber
	}
	return ErrUnterminatedString
}

// DBError converts the error into the structured form the CLI and UI report.
func (e *LexError) DBError() *dberror.DBError {
	code, hint := dberror.CodeUnterminatedString, `close the literal with '"' on the same line`
	if e.Kind == InvalidNumber {
		code, hint = dberror.CodeInvalidNumber, "a numeric literal may contain at most one '.'"
	}

	return dberror.New(dberror.ErrCategoryUser, code, e.Unwrap().Error()).
		WithDetail(fmt.Sprintf("line %d, column %d", e.Loc.Row+1, e.Loc.Col+1)).
		WithHint(hint).
		WithContext("Tokenize", "Lexer").
		WithCause(e)
}
