package lib

import (
	"errors"
	"fmt"
)

// Parse builds a program from source text. A non-empty error list does not
// mean the program is empty: statements that did parse are still returned.
func Parse(input string) (*Program, []string) {
	p := NewParser(NewLexer(input))
	prog := p.ParseProgram()
	return prog, p.Errors()
}

var errUnimplemented = errors.New("unimplemented")

// Parser reads tokens through a two token window: curToken is the token
// being looked at and peekToken the one right after it.
type Parser struct {
	reader    tokenReader
	curToken  Token
	peekToken Token
	errors    []string
}

func NewParser(reader tokenReader) *Parser {
	p := &Parser{
		reader: reader,
		errors: []string{},
	}

	// fill both curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the structural errors collected so far, in the order they
// were found.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.reader.NextToken()
}

// ParseProgram reads statements until EOF. A statement that fails to parse
// is left out of the program and parsing carries on from the next token,
// which is not necessarily the start of a statement.
func (p *Parser) ParseProgram() *Program {
	prog := &Program{Statements: []Statement{}}

	for !p.curTokenIs(TokenTypeEOF) {
		stmt, err := p.scanStatement()
		if err == nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}

	return prog
}

func (p *Parser) scanStatement() (Statement, error) {
	switch p.curToken.Type {
	case TokenTypeLet:
		return p.scanLet()
	case TokenTypeReturn:
		return p.scanReturn()
	default:
		return nil, errUnimplemented
	}
}

// Reads after "let"
func (p *Parser) scanLet() (Statement, error) {
	stmt := &LetStatement{Token: p.curToken}

	// let x...
	if err := p.requirePeek(TokenTypeIdent); err != nil {
		return nil, err
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	// let x = ...
	if err := p.requirePeek(TokenTypeAssign); err != nil {
		return nil, err
	}

	p.nextToken()
	stmt.Value = p.skipExpression()

	return stmt, nil
}

// Reads after "return"
func (p *Parser) scanReturn() (Statement, error) {
	stmt := &ReturnStatement{Token: p.curToken}

	p.nextToken()
	stmt.ReturnValue = p.skipExpression()

	return stmt, nil
}

// skipExpression throws away tokens up to the statement terminator. The
// last one thrown away becomes the placeholder; nil when there was nothing
// between here and the terminator.
func (p *Parser) skipExpression() Expression {
	var last *Token
	for !p.curTokenIs(TokenTypeSemicolon) && !p.curTokenIs(TokenTypeEOF) {
		tok := p.curToken
		last = &tok
		p.nextToken()
	}
	if last == nil {
		return nil
	}
	return &UnsupportedExpression{Token: *last}
}

func (p *Parser) curTokenIs(typ TokenType) bool {
	return p.curToken.Type == typ
}

func (p *Parser) peekTokenIs(typ TokenType) bool {
	return p.peekToken.Type == typ
}

// requirePeek moves forward only if the next token has the given type.
// Otherwise the mismatch is recorded and returned.
func (p *Parser) requirePeek(typ TokenType) error {
	if p.peekTokenIs(typ) {
		p.nextToken()
		return nil
	}
	msg := fmt.Sprintf("Expected: %s, Got: %s", typ, p.peekToken.Type)
	p.errors = append(p.errors, msg)
	return errors.New(msg)
}
