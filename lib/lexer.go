package lib

// Tokenize drains a fresh lexer over input. The returned slice always ends
// with the EOF token.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	tokens := []Token{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenTypeEOF {
			return tokens
		}
	}
}

// Lexer turns source text into tokens one at a time. It works on raw bytes,
// so anything outside ASCII comes out as one ILLEGAL token per byte.
type Lexer struct {
	input            string
	length           int
	currentCharIndex int
	currentLocation  Location
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:            input,
		length:           len(input),
		currentCharIndex: 0,
		currentLocation:  Location{Line: 1, Col: 1},
	}
}

func (l *Lexer) peek(offset int) (byte, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.input[i], true
}

// advance never moves past the end of input, which is what keeps NextToken
// returning EOF forever once the input is exhausted.
func (l *Lexer) advance() (byte, bool) {
	ch, ok := l.peek(0)
	if !ok {
		return 0, false
	}
	l.currentCharIndex++
	if ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return ch, true
}

func (l *Lexer) advanceWhile(pred func(byte) bool) {
	for {
		ch, ok := l.peek(0)
		if !ok || !pred(ch) {
			return
		}
		_, _ = l.advance()
	}
}

// NextToken returns the next token in the input. At end of input it returns
// an EOF token with an empty literal, on this call and every later one.
func (l *Lexer) NextToken() Token {
	l.advanceWhile(isWhitespace)

	start := l.currentCharIndex
	loc := l.currentLocation

	ch, ok := l.advance()
	if !ok {
		return Token{Type: TokenTypeEOF, Literal: "", Location: loc}
	}

	switch ch {
	case '=':
		if l.consumeIf('=') {
			return l.token(TokenTypeEqual, start, loc)
		}
		return l.token(TokenTypeAssign, start, loc)
	case '!':
		if l.consumeIf('=') {
			return l.token(TokenTypeNotEqual, start, loc)
		}
		return l.token(TokenTypeBang, start, loc)
	case ';':
		return l.token(TokenTypeSemicolon, start, loc)
	case '(':
		return l.token(TokenTypeLParen, start, loc)
	case ')':
		return l.token(TokenTypeRParen, start, loc)
	case '{':
		return l.token(TokenTypeLBrace, start, loc)
	case '}':
		return l.token(TokenTypeRBrace, start, loc)
	case ',':
		return l.token(TokenTypeComma, start, loc)
	case '+':
		return l.token(TokenTypePlus, start, loc)
	case '-':
		return l.token(TokenTypeMinus, start, loc)
	case '*':
		return l.token(TokenTypeAsterisk, start, loc)
	case '/':
		return l.token(TokenTypeSlash, start, loc)
	case '<':
		return l.token(TokenTypeLess, start, loc)
	case '>':
		return l.token(TokenTypeGreater, start, loc)
	}

	if isLetter(ch) {
		l.advanceWhile(isLetter)
		tok := l.token(TokenTypeIdent, start, loc)
		tok.Type = LookupIdent(tok.Literal)
		return tok
	}

	// no sign, no fraction, no range check: the literal stays raw text
	if isDigit(ch) {
		l.advanceWhile(isDigit)
		return l.token(TokenTypeInt, start, loc)
	}

	return l.token(TokenTypeIllegal, start, loc)
}

func (l *Lexer) consumeIf(expected byte) bool {
	ahead, ok := l.peek(0)
	if ok && ahead == expected {
		_, _ = l.advance()
		return true
	}
	return false
}

func (l *Lexer) token(typ TokenType, start int, loc Location) Token {
	return Token{
		Type:     typ,
		Literal:  l.input[start:l.currentCharIndex],
		Location: loc,
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
