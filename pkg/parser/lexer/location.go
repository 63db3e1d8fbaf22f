package lexer

import "fmt"

// Location is a point in the source text.
//
// Row is the 0-based line index and Col the 0-based rune index inside that
// line. A newline character sits at the end of the line it terminates; the
// character following it starts the next row at column 0. Offset is the byte
// offset of the character in the input and is what Span uses to slice text.
type Location struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Offset int `json:"offset"`
}

// Compare orders locations by row, then column. It returns -1, 0 or 1.
func (l Location) Compare(other Location) int {
	switch {
	case l.Row < other.Row:
		return -1
	case l.Row > other.Row:
		return 1
	case l.Col < other.Col:
		return -1
	case l.Col > other.Col:
		return 1
	default:
		return 0
	}
}

// Before reports whether l strictly precedes other.
func (l Location) Before(other Location) bool {
	return l.Compare(other) < 0
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Row, l.Col)
}
