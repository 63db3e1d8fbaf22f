package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func FuzzLexer(f *testing.F) {
	// Seed corpus: statements of the dialect plus inputs that stress mode
	// changes and error paths.
	seeds := []string{
		"SELECT * FROM users",
		"INSERT INTO t VALUES (1, \"hello\")",
		"CREATE TABLE foo (id INT PRIMARY KEY, name VARCHAR)",
		"UPDATE users SET name = \"alice\" WHERE id >= 1",
		"DELETE FROM orders WHERE total != 100",
		"SELECT -- trailing comment\n42",
		"BEGIN TRANSACTION; COMMIT;",
		// Edge cases
		"",
		"   ",
		"\"unclosed string",
		"\"multi\nline\"",
		"1.2.3",
		"..",
		"123abc",
		"--",
		"-",
		"!",
		"!=",
		"<>=",
		"(((())))",
		"\x00\x01\x02",
		"\xff\xfe",
		"é\t\"ü\"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		l := New(input)

		var items []TokenItem
		failed := false
		// Every step consumes at least one character, so the run must end
		// within one pull per token plus the trailing error and EOF.
		for i := 0; i < len(input)+3; i++ {
			item, err := l.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				var lexErr *LexError
				if !errors.As(err, &lexErr) {
					t.Fatalf("unexpected error type %T: %v", err, err)
				}
				if failed {
					t.Fatalf("second error after the first: %v", err)
				}
				failed = true
				continue
			}
			if failed {
				t.Fatalf("token %v produced after an error", item.Token)
			}
			items = append(items, item)
		}

		if _, err := l.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("lexer did not terminate: %v", err)
		}

		var rebuilt strings.Builder
		for i, item := range items {
			if item.Start.Compare(item.End) > 0 {
				t.Fatalf("token %d starts after it ends: %+v", i, item)
			}
			if i > 0 && !items[i-1].End.Before(item.Start) {
				t.Fatalf("token %d does not follow token %d", i, i-1)
			}
			if item.Token.Kind == KindNumber && strings.Count(item.Token.Text, ".") > 1 {
				t.Fatalf("number with more than one '.': %q", item.Token.Text)
			}
			if item.Token.Kind == KindString && strings.ContainsAny(item.Token.Text, "\"\n") {
				t.Fatalf("string payload contains a quote or newline: %q", item.Token.Text)
			}
			rebuilt.WriteString(item.Span(input))
		}

		if !failed && !strings.Contains(input, "--") && rebuilt.String() != input {
			t.Fatalf("spans do not cover the input:\n got %q\nwant %q", rebuilt.String(), input)
		}
	})
}
