package lexer

import (
	"fmt"
	"strings"
)

// Mode is the lexing context the machine is in.
type Mode int

const (
	ModeBase Mode = iota
	ModeString
	ModeComment
	ModeOperator
	ModeNumber
	ModeInvalid
)

var modeNames = map[Mode]string{
	ModeBase:     "Base",
	ModeString:   "String",
	ModeComment:  "Comment",
	ModeOperator: "Operator",
	ModeNumber:   "Number",
	ModeInvalid:  "Invalid",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// machine is the tokenizer state. Each call to step consumes exactly one
// character and returns the tokens it completed, never more than two.
//
// The returned slice is owned by the machine and is only valid until the
// next call to step.
type machine struct {
	mode     Mode
	decimals bool // a '.' has been seen in the current number
	buf      strings.Builder
	start    Location
	last     Location
	err      *LexError
	out      []TokenItem
}

func newMachine() *machine {
	return &machine{out: make([]TokenItem, 0, 2)}
}

func (m *machine) step(c CharItem) ([]TokenItem, error) {
	m.out = m.out[:0]

	switch m.mode {
	case ModeBase:
		m.base(c)
	case ModeString:
		m.str(c)
	case ModeComment:
		m.comment(c)
	case ModeOperator:
		m.operator(c)
	case ModeNumber:
		m.number(c)
	case ModeInvalid:
	default:
		panic(fmt.Sprintf("lexer: unhandled mode %v", m.mode))
	}

	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

func (m *machine) base(c CharItem) {
	switch {
	case c.IsSentinel():
		m.flush()

	case c.Char == '"':
		m.flush()
		m.enter(ModeString, c.Loc)

	case c.Char == '-' && c.HasNext && c.Next == '-':
		m.flush()
		m.enter(ModeComment, c.Loc)

	case (isDigit(c.Char) || c.Char == '.') && m.buf.Len() == 0:
		m.enter(ModeNumber, c.Loc)
		m.decimals = c.Char == '.'
		m.push(c)

	case c.Char == '!' && c.HasNext && c.Next == '=':
		m.flush()
		m.enter(ModeOperator, c.Loc)
		m.push(c)

	default:
		tok, ok := separatorRune(c.Char)
		if !ok {
			if m.buf.Len() == 0 {
				m.start = c.Loc
			}
			m.push(c)
			return
		}

		m.flush()
		if tok.Kind == KindOperator {
			m.enter(ModeOperator, c.Loc)
			m.push(c)
			return
		}
		m.emit(tok, c.Loc, c.Loc)
	}
}

func (m *machine) str(c CharItem) {
	switch c.Char {
	case Sentinel, '\n':
		m.fail(UnterminatedString, m.start)
	case '"':
		m.emit(StringToken(m.buf.String()), m.start, c.Loc)
		m.reset()
	default:
		m.push(c)
	}
}

// comment drops everything up to the newline, which is kept as a token so
// the line break still separates the words around the comment.
func (m *machine) comment(c CharItem) {
	if c.Char == '\n' {
		m.emit(WhitespaceToken(Newline), c.Loc, c.Loc)
		m.reset()
	}
}

func (m *machine) operator(c CharItem) {
	if !c.IsSentinel() {
		if op, ok := LookupOperator(m.buf.String() + string(c.Char)); ok {
			m.emit(OperatorToken(op), m.start, c.Loc)
			m.reset()
			return
		}
	}

	m.flush()
	m.reset()
	m.base(c)
}

func (m *machine) number(c CharItem) {
	switch {
	case c.Char == '.' && m.decimals:
		m.fail(InvalidNumber, m.start)
	case c.Char == '.':
		m.decimals = true
		m.push(c)
	case isDigit(c.Char):
		m.push(c)
	default:
		m.emit(NumberToken(m.buf.String()), m.start, m.last)
		m.reset()
		m.base(c)
	}
}

// enter switches mode with an empty buffer whose token starts at loc.
func (m *machine) enter(mode Mode, loc Location) {
	m.mode = mode
	m.buf.Reset()
	m.start = loc
	m.last = loc
}

func (m *machine) reset() {
	m.mode = ModeBase
	m.decimals = false
	m.buf.Reset()
}

func (m *machine) push(c CharItem) {
	m.buf.WriteRune(c.Char)
	m.last = c.Loc
}

// flush emits the buffered word, if any, as a classified token.
func (m *machine) flush() {
	if tok, ok := Classify(m.buf.String()); ok {
		m.emit(tok, m.start, m.last)
	}
	m.buf.Reset()
}

func (m *machine) emit(tok Token, start, end Location) {
	m.out = append(m.out, TokenItem{Token: tok, Start: start, End: end})
}

func (m *machine) fail(kind ErrorKind, loc Location) {
	m.mode = ModeInvalid
	m.buf.Reset()
	m.err = &LexError{Kind: kind, Loc: loc}
}
