package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Token
	}{
		{";", SemicolonToken()},
		{",", CommaToken()},
		{" ", WhitespaceToken(Space)},
		{"\t", WhitespaceToken(Tab)},
		{"\n", WhitespaceToken(Newline)},
		{"+", OperatorToken(Add)},
		{"-", OperatorToken(Subtract)},
		{"*", OperatorToken(Multiply)},
		{"/", OperatorToken(Divide)},
		{"%", OperatorToken(Modulo)},
		{"=", OperatorToken(Eq)},
		{">", OperatorToken(Gt)},
		{"<", OperatorToken(Lt)},
		{"(", OperatorToken(ParenOpen)},
		{")", OperatorToken(ParenClose)},
		{"select", KeywordToken(Select)},
		{"SeLeCt", KeywordToken(Select)},
		{"BIGINT", KeywordToken(BigInt)},
		{"transaction", KeywordToken(Transaction)},
		{"selects", IdentifierToken("selects")},
		{"a_table", IdentifierToken("a_table")},
		{"!", IdentifierToken("!")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Classify(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)

			again, _ := Classify(tt.input)
			assert.Equal(t, got, again, "classification must be stable")
		})
	}
}

func TestClassifyNothing(t *testing.T) {
	_, ok := Classify("")
	assert.False(t, ok)

	_, ok = ClassifyChar(Sentinel)
	assert.False(t, ok)

	tok, ok := ClassifyChar(',')
	assert.True(t, ok)
	assert.Equal(t, CommaToken(), tok)
}

func TestEveryKeywordIsRecognised(t *testing.T) {
	assert.Len(t, keywords, 39)
	for word, kw := range keywords {
		got, ok := LookupKeyword(strings.ToLower(word))
		assert.True(t, ok, word)
		assert.Equal(t, kw, got)
		assert.Equal(t, word, strings.ToUpper(kw.String()))
	}
}

func TestOperatorSymbols(t *testing.T) {
	for sym, op := range operators {
		assert.Equal(t, sym, op.Symbol())
	}
}

func TestClassifySeparator(t *testing.T) {
	for _, s := range []string{";", ",", " ", "\t", "\n", "+", "(", ">="} {
		_, ok := ClassifySeparator(s)
		assert.True(t, ok, "%q should be a separator", s)
	}
	for _, s := range []string{"a", "1", ".", "\"", "!", "select"} {
		_, ok := ClassifySeparator(s)
		assert.False(t, ok, "%q should not be a separator", s)
	}
}

func TestKindIsSeparator(t *testing.T) {
	assert.True(t, KindOperator.IsSeparator())
	assert.True(t, KindWhitespace.IsSeparator())
	assert.True(t, KindComma.IsSeparator())
	assert.True(t, KindSemicolon.IsSeparator())
	assert.False(t, KindKeyword.IsSeparator())
	assert.False(t, KindIdentifier.IsSeparator())
	assert.False(t, KindString.IsSeparator())
	assert.False(t, KindNumber.IsSeparator())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Keyword(Select)", KeywordToken(Select).String())
	assert.Equal(t, "Operator(GtEq)", OperatorToken(GtEq).String())
	assert.Equal(t, "Whitespace(Space)", WhitespaceToken(Space).String())
	assert.Equal(t, `Identifier("a_table")`, IdentifierToken("a_table").String())
	assert.Equal(t, `String("hello world")`, StringToken("hello world").String())
	assert.Equal(t, `Number("3.14")`, NumberToken("3.14").String())
	assert.Equal(t, "Comma", CommaToken().String())
}

func TestTokenValue(t *testing.T) {
	assert.Equal(t, "SELECT", KeywordToken(Select).Value())
	assert.Equal(t, ">=", OperatorToken(GtEq).Value())
	assert.Equal(t, "\t", WhitespaceToken(Tab).Value())
	assert.Equal(t, ";", SemicolonToken().Value())
	assert.Equal(t, "42", NumberToken("42").Value())
}
