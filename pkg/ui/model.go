package ui

import (
	"errors"
	"fmt"
	"strings"

	dberror "ferrodb/pkg/error"
	"ferrodb/pkg/iterator"
	"ferrodb/pkg/parser/lexer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the interactive tokenizer: an editor whose content is lexed on
// every change, a highlighted preview and the resulting token table.
type Model struct {
	highlighter *SQLHighlighter
	editor      textarea.Model
	preview     viewport.Model
	tokenTable  table.Model
	help        help.Model
	keys        keyMap

	width          int
	height         int
	showHelp       bool
	hideWhitespace bool

	source    string
	items     []lexer.TokenItem
	lastError *dberror.DBError
}

func NewModel(initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a SQL statement..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 4)
	vp.Style = previewStyle

	t := table.New(
		table.WithColumns(tokenTableColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(secondaryColor).
		Bold(false)
	t.SetStyles(s)

	m := Model{
		highlighter: NewSQLHighlighter(),
		editor:      ta,
		preview:     vp,
		tokenTable:  t,
		help:        help.New(),
		keys:        keys,
	}
	if initial != "" {
		m.editor.SetValue(initial)
	}
	m.retokenize()
	return m
}

func tokenTableColumns() []table.Column {
	return []table.Column{
		{Title: "Span", Width: spanWidth},
		{Title: "Kind", Width: kindWidth},
		{Title: "Value", Width: valueWidth},
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.retokenize()
			return m, nil

		case key.Matches(msg, m.keys.ToggleWhitespace):
			m.hideWhitespace = !m.hideWhitespace
			m.retokenize()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.tokenTable.MoveUp(m.tokenTable.Height())
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.tokenTable.MoveDown(m.tokenTable.Height())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	if m.editor.Value() != m.source {
		m.retokenize()
	}

	return m, tea.Batch(cmds...)
}

// retokenize lexes the editor content and refreshes the preview and table.
func (m *Model) retokenize() {
	m.source = m.editor.Value()
	m.lastError = nil

	l := lexer.New(m.source)
	var err error
	if m.hideWhitespace {
		m.items, err = iterator.Filter[lexer.TokenItem](l, func(item lexer.TokenItem) bool {
			return item.Token.Kind != lexer.KindWhitespace
		})
	} else {
		m.items, err = iterator.Collect[lexer.TokenItem](l)
	}

	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		m.lastError = lexErr.DBError()
	}

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		rows[i] = table.Row(TokenColumns(item))
	}
	m.tokenTable.SetRows(rows)

	highlighted, _ := m.highlighter.Highlight(m.source)
	m.preview.SetContent(highlighted)
}

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("ferrodb lexer"),
		labelStyle.Render("Query"),
		editorStyle.Render(m.editor.View()),
		labelStyle.Render("Highlighted"),
		m.preview.View(),
	}

	if m.lastError != nil {
		sections = append(sections, m.renderError())
	}

	sections = append(sections, labelStyle.Render("Tokens"), m.tokenTable.View(), m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderError() string {
	icon := errorStyle.Render(" ⚠ ERROR ")
	message := lipgloss.NewStyle().
		Foreground(errorColor).
		Render(fmt.Sprintf("%s (%s)", m.lastError.Message, m.lastError.Detail))

	hint := lipgloss.NewStyle().
		Foreground(textMuted).
		Render(m.lastError.Hint)

	return fmt.Sprintf("%s %s\n%s", icon, message, hint)
}

func (m Model) renderStatusBar() string {
	var status string
	if m.lastError != nil {
		status = errorStyle.Render(m.lastError.Code)
	} else {
		status = successStyle.Render(" ✓ ")
	}

	filter := ""
	if m.hideWhitespace {
		filter = " | whitespace hidden"
	}

	content := status + lipgloss.NewStyle().
		Foreground(textMuted).
		Render(fmt.Sprintf(" %d tokens%s | ctrl+h for help", len(m.items), filter))

	return statusBarStyle.
		Width(max(m.width-4, 0)).
		Render(content)
}

func (m Model) renderHelp() string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(bgMedium).
		Render(m.help.FullHelpView(m.keys.FullHelp()))
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	const editorHeight, previewHeight = 6, 4
	tableHeight := max(m.height-editorHeight-previewHeight-16, 3)

	m.editor.SetWidth(max(m.width-6, 10))
	m.preview.Width = max(m.width-6, 10)
	m.preview.Height = previewHeight
	m.tokenTable.SetHeight(tableHeight)
}

// Source returns the text currently in the editor.
func (m Model) Source() string {
	return m.source
}

// Tokens returns the tokens of the current editor content.
func (m Model) Tokens() []lexer.TokenItem {
	return m.items
}

// Err returns the lexing error for the current content, if any.
func (m Model) Err() *dberror.DBError {
	return m.lastError
}
