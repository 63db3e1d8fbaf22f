package lexer

import "strings"

// The lookup tables below are fixed for the dialect and never mutated.
var (
	separators = map[string]Token{
		";": SemicolonToken(),
		",": CommaToken(),
	}

	whitespaces = map[string]Whitespace{
		" ":  Space,
		"\t": Tab,
		"\n": Newline,
	}

	whitespaceText = map[Whitespace]string{
		Space:   " ",
		Tab:     "\t",
		Newline: "\n",
	}

	operators = map[string]Operator{
		"+":  Add,
		"/":  Divide,
		"=":  Eq,
		">":  Gt,
		">=": GtEq,
		"<":  Lt,
		"<=": LtEq,
		"%":  Modulo,
		"*":  Multiply,
		"!=": NotEq,
		")":  ParenClose,
		"(":  ParenOpen,
		"-":  Subtract,
	}

	keywords = map[string]Keyword{
		"AND":         And,
		"AS":          As,
		"BEGIN":       Begin,
		"BETWEEN":     Between,
		"BIGINT":      BigInt,
		"BOOL":        Bool,
		"BY":          By,
		"COMMIT":      Commit,
		"CREATE":      Create,
		"DATABASE":    Database,
		"DELETE":      Delete,
		"DISTINCT":    Distinct,
		"DROP":        Drop,
		"FALSE":       False,
		"FROM":        From,
		"IN":          In,
		"INDEX":       Index,
		"INSERT":      Insert,
		"INT":         Int,
		"KEY":         Key,
		"LIKE":        Like,
		"LIMIT":       Limit,
		"NOT":         Not,
		"NULL":        Null,
		"OR":          Or,
		"ORDER":       Order,
		"PRIMARY":     Primary,
		"ROLLBACK":    Rollback,
		"SELECT":      Select,
		"SET":         Set,
		"TABLE":       Table,
		"TRANSACTION": Transaction,
		"TRUE":        True,
		"UNIQUE":      Unique,
		"UNSIGNED":    Unsigned,
		"UPDATE":      Update,
		"VALUES":      Values,
		"VARCHAR":     Varchar,
		"WHERE":       Where,
	}
)

// LookupKeyword matches s case-insensitively against the reserved words.
func LookupKeyword(s string) (Keyword, bool) {
	k, ok := keywords[strings.ToUpper(s)]
	return k, ok
}

// LookupOperator matches s against both the one and two character operators.
func LookupOperator(s string) (Operator, bool) {
	o, ok := operators[strings.ToUpper(s)]
	return o, ok
}

// LookupWhitespace matches a single whitespace character.
func LookupWhitespace(s string) (Whitespace, bool) {
	w, ok := whitespaces[strings.ToUpper(s)]
	return w, ok
}

// ClassifySeparator reports whether s ends a word: a comma or semicolon,
// a whitespace character or an operator.
func ClassifySeparator(s string) (Token, bool) {
	if tok, ok := separators[s]; ok {
		return tok, true
	}
	if w, ok := LookupWhitespace(s); ok {
		return WhitespaceToken(w), true
	}
	if o, ok := LookupOperator(s); ok {
		return OperatorToken(o), true
	}
	return Token{}, false
}

// Classify turns a completed word into a token. Separators win over
// keywords; anything unrecognised is an identifier. The empty string has no
// token.
func Classify(s string) (Token, bool) {
	if s == "" {
		return Token{}, false
	}
	if tok, ok := ClassifySeparator(s); ok {
		return tok, true
	}
	if k, ok := LookupKeyword(s); ok {
		return KeywordToken(k), true
	}
	return IdentifierToken(s), true
}

// ClassifyChar classifies a single character. The sentinel has no token.
func ClassifyChar(ch rune) (Token, bool) {
	if ch == Sentinel {
		return Token{}, false
	}
	return Classify(string(ch))
}

func separatorRune(ch rune) (Token, bool) {
	if ch == Sentinel {
		return Token{}, false
	}
	return ClassifySeparator(string(ch))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
