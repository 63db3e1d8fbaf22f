package lexer

import "unicode/utf8"

// Sentinel is the character carried by the single end-of-input item. It is
// not a valid rune, so it can never collide with input text.
const Sentinel rune = -1

// CharItem is one input character together with its lookahead.
type CharItem struct {
	Char    rune
	Next    rune
	HasNext bool
	Loc     Location
}

// IsSentinel reports whether the item is the end-of-input marker.
func (c CharItem) IsSentinel() bool {
	return c.Char == Sentinel
}

// charSource walks the input one rune at a time. It is forward-only: once an
// item has been returned there is no way to get it back.
type charSource struct {
	input string
	pos   int
	loc   Location
	done  bool
}

func newCharSource(input string) *charSource {
	return &charSource{input: input}
}

// next returns the following item. After the last character it returns the
// sentinel exactly once, then reports false on every call.
func (s *charSource) next() (CharItem, bool) {
	if s.done {
		return CharItem{}, false
	}

	if s.pos >= len(s.input) {
		s.done = true
		return CharItem{Char: Sentinel, Next: Sentinel, Loc: s.loc}, true
	}

	ch, width := utf8.DecodeRuneInString(s.input[s.pos:])
	item := CharItem{Char: ch, Next: Sentinel, Loc: s.loc}
	if s.pos+width < len(s.input) {
		item.Next, _ = utf8.DecodeRuneInString(s.input[s.pos+width:])
		item.HasNext = true
	}

	s.pos += width
	s.loc.Offset = s.pos
	if ch == '\n' {
		s.loc.Row++
		s.loc.Col = 0
	} else {
		s.loc.Col++
	}

	return item, true
}
