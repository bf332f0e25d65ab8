package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireLet(t *testing.T, stmt Statement, name string) *LetStatement {
	let, ok := stmt.(*LetStatement)
	require.True(t, ok, "statement is %T, not *LetStatement", stmt)
	require.Equal(t, "let", let.TokenLiteral())
	require.NotNil(t, let.Name)
	require.Equal(t, name, let.Name.Value)
	require.Equal(t, name, let.Name.TokenLiteral())
	return let
}

func TestParseLetStatements(t *testing.T) {
	prog, errs := Parse(`
		let x = 5;
		let y = 10;
		let foobar = 838383;
	`)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 3)

	requireLet(t, prog.Statements[0], "x")
	requireLet(t, prog.Statements[1], "y")
	requireLet(t, prog.Statements[2], "foobar")
}

func TestParseReturnStatements(t *testing.T) {
	prog, errs := Parse(`
		return 5;
		return 10;
		return 993322;
	`)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 3)

	for _, stmt := range prog.Statements {
		ret, ok := stmt.(*ReturnStatement)
		require.True(t, ok, "statement is %T, not *ReturnStatement", stmt)
		require.Equal(t, "return", ret.TokenLiteral())
	}
}

func TestParseLetMissingIdentifier(t *testing.T) {
	prog, errs := Parse("let = 5;")
	require.Len(t, prog.Statements, 0)
	require.Equal(t, []string{"Expected: IDENT, Got: ASSIGN"}, errs)
}

func TestParseLetMissingAssign(t *testing.T) {
	prog, errs := Parse("let x 5;")
	require.Len(t, prog.Statements, 0)
	require.Equal(t, []string{"Expected: ASSIGN, Got: INT"}, errs)
}

func TestParseKeepsGoingAfterBadStatement(t *testing.T) {
	prog, errs := Parse(`
		let = 1;
		let a = 2;
		let 3;
		return a;
	`)
	require.Equal(t, []string{
		"Expected: IDENT, Got: ASSIGN",
		"Expected: IDENT, Got: INT",
	}, errs)
	require.Len(t, prog.Statements, 2)
	requireLet(t, prog.Statements[0], "a")
	_, ok := prog.Statements[1].(*ReturnStatement)
	require.True(t, ok)
}

// The loop only steps one token past a failed statement, so a let keyword
// sitting where the failed statement stopped starts a new statement.
func TestParseRecoveryIsOneToken(t *testing.T) {
	prog, errs := Parse("let let y = 1;")
	require.Equal(t, []string{"Expected: IDENT, Got: LET"}, errs)
	require.Len(t, prog.Statements, 1)
	requireLet(t, prog.Statements[0], "y")
}

func TestParseUnrecognizedStatementsAreDropped(t *testing.T) {
	prog, errs := Parse("x + 1; if (x) { y }; let z = 3;")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)
	requireLet(t, prog.Statements[0], "z")
}

func TestParseIllegalTokensDoNotStopParsing(t *testing.T) {
	prog, errs := Parse("let a = @; # let b = 2;")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)

	a := requireLet(t, prog.Statements[0], "a")
	value, ok := a.Value.(*UnsupportedExpression)
	require.True(t, ok)
	require.Equal(t, TokenTypeIllegal, value.Token.Type)
	require.Equal(t, "@", value.TokenLiteral())

	requireLet(t, prog.Statements[1], "b")
}

func TestParseValueIsPlaceholder(t *testing.T) {
	prog, errs := Parse("let x = 1 + foo; return 5 * 2;")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)

	let := requireLet(t, prog.Statements[0], "x")
	value, ok := let.Value.(*UnsupportedExpression)
	require.True(t, ok)
	require.Equal(t, "foo", value.TokenLiteral())

	ret := prog.Statements[1].(*ReturnStatement)
	retValue, ok := ret.ReturnValue.(*UnsupportedExpression)
	require.True(t, ok)
	require.Equal(t, "2", retValue.TokenLiteral())
}

func TestParseEmptyExpression(t *testing.T) {
	prog, errs := Parse("let x = ; return;")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)

	let := requireLet(t, prog.Statements[0], "x")
	require.Nil(t, let.Value)

	ret := prog.Statements[1].(*ReturnStatement)
	require.Nil(t, ret.ReturnValue)
}

func TestParseUnterminatedStatement(t *testing.T) {
	prog, errs := Parse("let x = 5")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)
	requireLet(t, prog.Statements[0], "x")

	prog, errs = Parse("return")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)

	prog, errs = Parse("let")
	require.Equal(t, []string{"Expected: IDENT, Got: EOF"}, errs)
	require.Len(t, prog.Statements, 0)
}

func TestParseEmpty(t *testing.T) {
	prog, errs := Parse("")
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 0)
	require.Equal(t, "", prog.TokenLiteral())
}

type sliceReader struct {
	tokens []Token
	reads  int
}

func (s *sliceReader) NextToken() Token {
	s.reads++
	if len(s.tokens) == 0 {
		return Token{Type: TokenTypeEOF}
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok
}

func TestNewParserPrimesTwoTokens(t *testing.T) {
	reader := &sliceReader{tokens: []Token{
		{Type: TokenTypeReturn, Literal: "return"},
		{Type: TokenTypeInt, Literal: "1"},
		{Type: TokenTypeSemicolon, Literal: ";"},
	}}
	p := NewParser(reader)
	require.Equal(t, 2, reader.reads)
	require.Equal(t, TokenTypeReturn, p.curToken.Type)
	require.Equal(t, TokenTypeInt, p.peekToken.Type)

	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	require.Len(t, prog.Statements, 1)
	require.Equal(t, "return <unsupported: 1>;", prog.String())
}
