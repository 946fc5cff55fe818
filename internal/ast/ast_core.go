package ast

import (
	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// Node is the base interface for all tree nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Expression is a Node that produces a value. Every expression carries a
// write-once type slot filled by the annotation pass.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
	Type() typesystem.Type
	SetType(typesystem.Type) bool
}

// Declaration is a top-level item of a Program.
type Declaration interface {
	Node
	declarationNode()
	GetToken() token.Token
}

// Annotation is the type slot embedded in every expression. It starts unset
// and may be written exactly once.
type Annotation struct {
	typ typesystem.Type
}

// Type returns the annotated type, or nil if the node was not annotated.
func (a *Annotation) Type() typesystem.Type { return a.typ }

// SetType fills the slot. It reports false, leaving the slot untouched, if
// the slot was already written or t is nil.
func (a *Annotation) SetType(t typesystem.Type) bool {
	if a.typ != nil || t == nil {
		return false
	}
	a.typ = t
	return true
}

// Program is the root node handed over by the parser: one compilation unit.
type Program struct {
	File         string
	Declarations []Declaration
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

// FunctionDeclaration binds a function literal to a top-level name.
// fn name(params) -> ret { body }
type FunctionDeclaration struct {
	Token    token.Token
	Name     string
	Function *FunctionLiteral
}

func (fd *FunctionDeclaration) Accept(v Visitor)     { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) declarationNode()     {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// GlobalDeclaration declares a top-level storage location.
// mut name: type = value
type GlobalDeclaration struct {
	Token   token.Token
	Name    string
	Binding typesystem.RefType
	Value   Expression // Optional
}

func (gd *GlobalDeclaration) Accept(v Visitor)     { v.VisitGlobalDeclaration(gd) }
func (gd *GlobalDeclaration) declarationNode()     {}
func (gd *GlobalDeclaration) TokenLiteral() string { return gd.Token.Lexeme }
func (gd *GlobalDeclaration) GetToken() token.Token {
	if gd == nil {
		return token.Token{}
	}
	return gd.Token
}

// Namespace groups declarations under a qualifying name.
// namespace name { declarations }
type Namespace struct {
	Token        token.Token
	Name         string
	Declarations []Declaration
}

func (ns *Namespace) Accept(v Visitor)     { v.VisitNamespace(ns) }
func (ns *Namespace) declarationNode()     {}
func (ns *Namespace) TokenLiteral() string { return ns.Token.Lexeme }
func (ns *Namespace) GetToken() token.Token {
	if ns == nil {
		return token.Token{}
	}
	return ns.Token
}

// Visitor walks the tree. Implementations decide whether to descend.
type Visitor interface {
	VisitProgram(*Program)
	VisitFunctionDeclaration(*FunctionDeclaration)
	VisitGlobalDeclaration(*GlobalDeclaration)
	VisitNamespace(*Namespace)

	VisitBinaryExpression(*BinaryExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitCallExpression(*CallExpression)
	VisitIfExpression(*IfExpression)
	VisitWhileExpression(*WhileExpression)
	VisitBreakExpression(*BreakExpression)
	VisitContinueExpression(*ContinueExpression)
	VisitReturnExpression(*ReturnExpression)
	VisitFunctionLiteral(*FunctionLiteral)
	VisitIntegerLiteral(*IntegerLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitBoolLiteral(*BoolLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitCompositeLiteral(*CompositeLiteral)
	VisitFieldAccess(*FieldAccess)
	VisitLetExpression(*LetExpression)
	VisitCastExpression(*CastExpression)
	VisitIdentifier(*Identifier)
}
