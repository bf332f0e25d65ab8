package lib

import (
	"bytes"
)

type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	isStatement()
}

func (s *LetStatement) isStatement()    {}
func (s *ReturnStatement) isStatement() {}

type Expression interface {
	Node
	isExpression()
}

func (i *Identifier) isExpression()            {}
func (u *UnsupportedExpression) isExpression() {}

// Program is the root of the tree. Statements are kept in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// let <Name> = <Value>;
type LetStatement struct {
	Token Token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }

func (s *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString(s.TokenLiteral() + " ")
	out.WriteString(s.Name.String())
	out.WriteString(" = ")
	if s.Value != nil {
		out.WriteString(s.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// return <ReturnValue>;
type ReturnStatement struct {
	Token       Token
	ReturnValue Expression
}

func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }

func (s *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(s.TokenLiteral() + " ")
	if s.ReturnValue != nil {
		out.WriteString(s.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

type Identifier struct {
	Token Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// UnsupportedExpression stands where an expression belongs but could not be
// parsed because expressions are not part of the grammar yet. It only echoes
// the token it was built from; code walking the tree has to check for it
// explicitly rather than treat it as a value.
type UnsupportedExpression struct {
	Token Token
}

func (u *UnsupportedExpression) TokenLiteral() string { return u.Token.Literal }

func (u *UnsupportedExpression) String() string {
	return "<unsupported: " + u.Token.Literal + ">"
}
