package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind is the lexical category of a token.
type Kind int

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindString
	KindNumber
	KindOperator
	KindWhitespace
	KindComma
	KindSemicolon
)

var kindNames = map[Kind]string{
	KindKeyword:    "Keyword",
	KindIdentifier: "Identifier",
	KindString:     "String",
	KindNumber:     "Number",
	KindOperator:   "Operator",
	KindWhitespace: "Whitespace",
	KindComma:      "Comma",
	KindSemicolon:  "Semicolon",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSeparator reports whether tokens of this kind end a word. Operators,
// whitespace, commas and semicolons all do.
func (k Kind) IsSeparator() bool {
	switch k {
	case KindOperator, KindWhitespace, KindComma, KindSemicolon:
		return true
	}
	return false
}

type Keyword int

const (
	And Keyword = iota
	As
	Begin
	Between
	BigInt
	Bool
	By
	Commit
	Create
	Database
	Delete
	Distinct
	Drop
	False
	From
	In
	Index
	Insert
	Int
	Key
	Like
	Limit
	Not
	Null
	Or
	Order
	Primary
	Rollback
	Select
	Set
	Table
	Transaction
	True
	Unique
	Unsigned
	Update
	Values
	Varchar
	Where
)

var keywordNames = map[Keyword]string{
	And:         "And",
	As:          "As",
	Begin:       "Begin",
	Between:     "Between",
	BigInt:      "BigInt",
	Bool:        "Bool",
	By:          "By",
	Commit:      "Commit",
	Create:      "Create",
	Database:    "Database",
	Delete:      "Delete",
	Distinct:    "Distinct",
	Drop:        "Drop",
	False:       "False",
	From:        "From",
	In:          "In",
	Index:       "Index",
	Insert:      "Insert",
	Int:         "Int",
	Key:         "Key",
	Like:        "Like",
	Limit:       "Limit",
	Not:         "Not",
	Null:        "Null",
	Or:          "Or",
	Order:       "Order",
	Primary:     "Primary",
	Rollback:    "Rollback",
	Select:      "Select",
	Set:         "Set",
	Table:       "Table",
	Transaction: "Transaction",
	True:        "True",
	Unique:      "Unique",
	Unsigned:    "Unsigned",
	Update:      "Update",
	Values:      "Values",
	Varchar:     "Varchar",
	Where:       "Where",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Operator int

const (
	Add Operator = iota
	Divide
	Eq
	Gt
	GtEq
	Lt
	LtEq
	Modulo
	Multiply
	NotEq
	ParenClose
	ParenOpen
	Subtract
)

var operatorNames = map[Operator]string{
	Add:        "Add",
	Divide:     "Divide",
	Eq:         "Eq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Modulo:     "Modulo",
	Multiply:   "Multiply",
	NotEq:      "NotEq",
	ParenClose: "ParenClose",
	ParenOpen:  "ParenOpen",
	Subtract:   "Subtract",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Symbol returns the source spelling of the operator.
func (o Operator) Symbol() string {
	for sym, op := range operators {
		if op == o {
			return sym
		}
	}
	return ""
}

type Whitespace int

const (
	Space Whitespace = iota
	Tab
	Newline
)

var whitespaceNames = map[Whitespace]string{
	Space:   "Space",
	Tab:     "Tab",
	Newline: "Newline",
}

func (w Whitespace) String() string {
	if name, ok := whitespaceNames[w]; ok {
		return name
	}
	return "Unknown"
}

// Token is a classified lexical unit. Only the field matching Kind is
// meaningful: Keyword for keywords, Operator for operators, Whitespace for
// whitespace and Text for identifiers, strings and numbers. Number text is
// kept unparsed.
type Token struct {
	Kind       Kind
	Keyword    Keyword
	Operator   Operator
	Whitespace Whitespace
	Text       string
}

func KeywordToken(k Keyword) Token       { return Token{Kind: KindKeyword, Keyword: k} }
func IdentifierToken(s string) Token     { return Token{Kind: KindIdentifier, Text: s} }
func StringToken(s string) Token         { return Token{Kind: KindString, Text: s} }
func NumberToken(s string) Token         { return Token{Kind: KindNumber, Text: s} }
func OperatorToken(o Operator) Token     { return Token{Kind: KindOperator, Operator: o} }
func WhitespaceToken(w Whitespace) Token { return Token{Kind: KindWhitespace, Whitespace: w} }
func CommaToken() Token                  { return Token{Kind: KindComma} }
func SemicolonToken() Token              { return Token{Kind: KindSemicolon} }

func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return fmt.Sprintf("Keyword(%s)", t.Keyword)
	case KindOperator:
		return fmt.Sprintf("Operator(%s)", t.Operator)
	case KindWhitespace:
		return fmt.Sprintf("Whitespace(%s)", t.Whitespace)
	case KindIdentifier, KindString, KindNumber:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// Value returns the token's payload the way a consumer would print it:
// the text for literals and identifiers, the upper-case keyword, or the
// operator symbol.
func (t Token) Value() string {
	switch t.Kind {
	case KindKeyword:
		return strings.ToUpper(t.Keyword.String())
	case KindOperator:
		return t.Operator.Symbol()
	case KindWhitespace:
		return whitespaceText[t.Whitespace]
	case KindComma:
		return ","
	case KindSemicolon:
		return ";"
	default:
		return t.Text
	}
}

// TokenItem is a token with the locations of its first and last character.
type TokenItem struct {
	Token Token
	Start Location
	End   Location
}

// Span returns the slice of input covered by the item. The input must be the
// text the item was produced from.
func (t TokenItem) Span(input string) string {
	if t.Start.Offset > len(input) || t.End.Offset >= len(input) {
		return ""
	}
	_, width := utf8.DecodeRuneInString(input[t.End.Offset:])
	return input[t.Start.Offset : t.End.Offset+width]
}
