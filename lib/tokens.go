package lib

type TokenType int

const (
	TokenTypeIllegal TokenType = iota
	TokenTypeEOF
	TokenTypeIdent
	TokenTypeInt
	TokenTypeAssign
	TokenTypePlus
	TokenTypeMinus
	TokenTypeBang
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeLess
	TokenTypeGreater
	TokenTypeEqual
	TokenTypeNotEqual
	TokenTypeComma
	TokenTypeSemicolon
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeLBrace
	TokenTypeRBrace

	// keywords
	TokenTypeFunction
	TokenTypeLet
	TokenTypeTrue
	TokenTypeFalse
	TokenTypeIf
	TokenTypeElse
	TokenTypeReturn
)

var tokenTypeNames = [...]string{
	TokenTypeIllegal:   "ILLEGAL",
	TokenTypeEOF:       "EOF",
	TokenTypeIdent:     "IDENT",
	TokenTypeInt:       "INT",
	TokenTypeAssign:    "ASSIGN",
	TokenTypePlus:      "PLUS",
	TokenTypeMinus:     "MINUS",
	TokenTypeBang:      "BANG",
	TokenTypeAsterisk:  "ASTERISK",
	TokenTypeSlash:     "SLASH",
	TokenTypeLess:      "LT",
	TokenTypeGreater:   "GT",
	TokenTypeEqual:     "EQ",
	TokenTypeNotEqual:  "NOT_EQ",
	TokenTypeComma:     "COMMA",
	TokenTypeSemicolon: "SEMICOLON",
	TokenTypeLParen:    "LPAREN",
	TokenTypeRParen:    "RPAREN",
	TokenTypeLBrace:    "LBRACE",
	TokenTypeRBrace:    "RBRACE",
	TokenTypeFunction:  "FUNCTION",
	TokenTypeLet:       "LET",
	TokenTypeTrue:      "TRUE",
	TokenTypeFalse:     "FALSE",
	TokenTypeIf:        "IF",
	TokenTypeElse:      "ELSE",
	TokenTypeReturn:    "RETURN",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "UNKNOWN"
	}
	return tokenTypeNames[t]
}

// Location is the 1-based line and column of a token's first byte.
type Location struct {
	Line int
	Col  int
}

type Token struct {
	Type     TokenType
	Literal  string
	Location Location
}

// Only read through LookupIdent.
var keywords = map[string]TokenType{
	"fn":     TokenTypeFunction,
	"let":    TokenTypeLet,
	"true":   TokenTypeTrue,
	"false":  TokenTypeFalse,
	"if":     TokenTypeIf,
	"else":   TokenTypeElse,
	"return": TokenTypeReturn,
}

// LookupIdent classifies a word as a keyword, or as a plain identifier when
// it is not reserved.
func LookupIdent(ident string) TokenType {
	if typ, ok := keywords[ident]; ok {
		return typ
	}
	return TokenTypeIdent
}
