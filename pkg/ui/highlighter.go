package ui

import (
	"strings"

	"ferrodb/pkg/parser/lexer"

	"github.com/charmbracelet/lipgloss"
)

// SQLHighlighter colours query text by running it through the lexer, so what
// is highlighted is exactly what the parser will see.
type SQLHighlighter struct {
	styles       map[lexer.Kind]lipgloss.Style
	commentStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	p := palette

	return &SQLHighlighter{
		styles: map[lexer.Kind]lipgloss.Style{
			lexer.KindKeyword:   lipgloss.NewStyle().Foreground(p.Keyword).Bold(true),
			lexer.KindString:    lipgloss.NewStyle().Foreground(p.String),
			lexer.KindNumber:    lipgloss.NewStyle().Foreground(p.Number),
			lexer.KindOperator:  lipgloss.NewStyle().Foreground(p.Operator),
			lexer.KindComma:     lipgloss.NewStyle().Foreground(p.Punct),
			lexer.KindSemicolon: lipgloss.NewStyle().Foreground(p.Punct).Bold(true),
		},
		commentStyle: lipgloss.NewStyle().Foreground(p.Comment).Italic(true),
		errorStyle:   lipgloss.NewStyle().Foreground(p.Error).Underline(true),
	}
}

// Highlight returns sql with every token styled. Text no token covers is a
// comment. When lexing fails, everything from the failure onwards is marked
// as an error and the lexing error is returned with the partial result.
func (h *SQLHighlighter) Highlight(sql string) (string, error) {
	var b strings.Builder
	cursor := 0

	var lexErr error
	for item, err := range lexer.New(sql).All() {
		if err != nil {
			lexErr = err
			break
		}

		if item.Start.Offset > cursor {
			h.renderLines(&b, h.commentStyle, sql[cursor:item.Start.Offset])
		}

		span := item.Span(sql)
		if style, ok := h.styles[item.Token.Kind]; ok {
			b.WriteString(style.Render(span))
		} else {
			b.WriteString(span)
		}
		cursor = item.Start.Offset + len(span)
	}

	if cursor < len(sql) {
		style := h.commentStyle
		if lexErr != nil {
			style = h.errorStyle
		}
		h.renderLines(&b, style, sql[cursor:])
	}

	return b.String(), lexErr
}

// renderLines styles each line separately; lipgloss would otherwise pad a
// multi-line block to its widest line.
func (h *SQLHighlighter) renderLines(b *strings.Builder, style lipgloss.Style, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(style.Render(line))
		}
	}
}
