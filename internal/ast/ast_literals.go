package ast

import (
	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// IntegerLiteral carries its declared width and signedness. Value holds the
// raw bits; signed literals are stored two's complement.
type IntegerLiteral struct {
	Annotation
	Token token.Token
	Kind  typesystem.TInt
	Value uint64
}

func (il *IntegerLiteral) Accept(v Visitor)     { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// FloatLiteral carries its declared precision. f80 values are held at
// float64 precision; the source text stays in Token.Lexeme.
type FloatLiteral struct {
	Annotation
	Token token.Token
	Kind  typesystem.TFloat
	Value float64
}

func (fl *FloatLiteral) Accept(v Visitor)     { v.VisitFloatLiteral(fl) }
func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// BoolLiteral: true or false
type BoolLiteral struct {
	Annotation
	Token token.Token
	Value bool
}

func (bl *BoolLiteral) Accept(v Visitor)     { v.VisitBoolLiteral(bl) }
func (bl *BoolLiteral) expressionNode()      {}
func (bl *BoolLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BoolLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

// ArrayLiteral: [elements...]. The annotation pass rejects it; element
// type inference is not implemented.
type ArrayLiteral struct {
	Annotation
	Token    token.Token
	Declared typesystem.Type // Optional
	Elements []Expression
}

func (al *ArrayLiteral) Accept(v Visitor)     { v.VisitArrayLiteral(al) }
func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Lexeme }
func (al *ArrayLiteral) GetToken() token.Token {
	if al == nil {
		return token.Token{}
	}
	return al.Token
}

// CompositeLiteral: type{values...}. Rejected by the annotation pass like
// ArrayLiteral.
type CompositeLiteral struct {
	Annotation
	Token    token.Token
	Declared typesystem.Type // Optional
	Values   []Expression
}

func (cl *CompositeLiteral) Accept(v Visitor)     { v.VisitCompositeLiteral(cl) }
func (cl *CompositeLiteral) expressionNode()      {}
func (cl *CompositeLiteral) TokenLiteral() string { return cl.Token.Lexeme }
func (cl *CompositeLiteral) GetToken() token.Token {
	if cl == nil {
		return token.Token{}
	}
	return cl.Token
}
