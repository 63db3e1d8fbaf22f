package ui

import (
	"fmt"

	"ferrodb/pkg/parser/lexer"
	"ferrodb/pkg/ui/base"
)

const (
	spanWidth  = 15
	kindWidth  = 12
	valueWidth = 40
)

// TokenRecord is the serialisable form of a token used for JSON output.
type TokenRecord struct {
	Kind  string         `json:"kind"`
	Token string         `json:"token"`
	Value string         `json:"value"`
	Start lexer.Location `json:"start"`
	End   lexer.Location `json:"end"`
}

func NewTokenRecord(item lexer.TokenItem) TokenRecord {
	return TokenRecord{
		Kind:  item.Token.Kind.String(),
		Token: item.Token.String(),
		Value: item.Token.Value(),
		Start: item.Start,
		End:   item.End,
	}
}

// SpanLabel renders a token's extent as "row:col-row:col".
func SpanLabel(item lexer.TokenItem) string {
	return fmt.Sprintf("%s-%s", item.Start, item.End)
}

// TokenColumns returns the cells of one token row: span, kind and value.
func TokenColumns(item lexer.TokenItem) []string {
	return []string{
		SpanLabel(item),
		item.Token.Kind.String(),
		base.TruncateString(base.Printable(item.Token.Value()), valueWidth),
	}
}

// FormatToken lays a token out as one fixed-width line of text.
func FormatToken(item lexer.TokenItem) string {
	cols := TokenColumns(item)
	return base.PadString(cols[0], spanWidth) + base.PadString(cols[1], kindWidth) + cols[2]
}
