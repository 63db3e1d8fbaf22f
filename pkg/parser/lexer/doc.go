// Package lexer implements the tokenizer for ferrodb's SQL dialect.
//
// The lexer turns raw query text into classified tokens (keywords,
// identifiers, string and numeric literals, operators and separators), each
// annotated with the location of its first and last character.
//
// # Usage
//
//	l := lexer.New("SELECT * FROM users WHERE id = 1")
//	for item, err := range l.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(item.Token, item.Start, item.End)
//	}
//
// Next offers the same sequence as a pull API, ending with io.EOF.
//
// # Modes
//
// Tokenization is a state machine with five modes: Base (words and
// separators), String (double-quoted literals, no escapes), Comment ("--" to
// end of line), Operator (one character of lookahead to form ">=", "<=" and
// "!=") and Number (digits with at most one '.'). A character that ends an
// operator or a number is handled again in Base mode, so "1+2" yields three
// tokens without ever rewinding the input.
//
// # Errors
//
// A string left open at a newline or at the end of input, and a number with
// a second '.', stop the run with a *LexError. No tokens follow it.
//
// # Locations
//
// Row is the line index and Col the character index within that line, both
// starting at 0. The newline character belongs to the line it ends.
package lexer
