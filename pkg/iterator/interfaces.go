package iterator

// Iterator is a pull source of values. Next returns io.EOF once the source is
// exhausted; any other error ends iteration as well.
//
// *lexer.Lexer is an Iterator[lexer.TokenItem].
type Iterator[T any] interface {
	Next() (T, error)
}
