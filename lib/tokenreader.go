package lib

// tokenReader is the only thing the parser needs from a lexer. Once it has
// handed out an EOF token it must keep returning EOF.
type tokenReader interface {
	NextToken() Token
}
