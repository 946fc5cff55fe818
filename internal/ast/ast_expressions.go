package ast

import (
	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// BinaryExpression: left op right
type BinaryExpression struct {
	Annotation
	Token    token.Token
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}

// UnaryExpression: op operand (prefix, postfix and sizeof forms)
type UnaryExpression struct {
	Annotation
	Token    token.Token
	Operator UnaryOperator
	Operand  Expression
}

func (ue *UnaryExpression) Accept(v Visitor)     { v.VisitUnaryExpression(ue) }
func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Lexeme }
func (ue *UnaryExpression) GetToken() token.Token {
	if ue == nil {
		return token.Token{}
	}
	return ue.Token
}

// CallExpression: function(arguments...)
type CallExpression struct {
	Annotation
	Token     token.Token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)     { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// IfExpression: if cond then consequence else alternative
type IfExpression struct {
	Annotation
	Token       token.Token
	Condition   Expression
	Consequence Expression
	Alternative Expression // Optional
}

func (ie *IfExpression) Accept(v Visitor)     { v.VisitIfExpression(ie) }
func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// WhileExpression: while cond body
type WhileExpression struct {
	Annotation
	Token     token.Token
	Condition Expression
	Body      Expression
}

func (we *WhileExpression) Accept(v Visitor)     { v.VisitWhileExpression(we) }
func (we *WhileExpression) expressionNode()      {}
func (we *WhileExpression) TokenLiteral() string { return we.Token.Lexeme }
func (we *WhileExpression) GetToken() token.Token {
	if we == nil {
		return token.Token{}
	}
	return we.Token
}

// BreakExpression: break [label]
type BreakExpression struct {
	Annotation
	Token token.Token
	Label string // Empty when absent
}

func (be *BreakExpression) Accept(v Visitor)     { v.VisitBreakExpression(be) }
func (be *BreakExpression) expressionNode()      {}
func (be *BreakExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BreakExpression) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}

// ContinueExpression: continue [label]
type ContinueExpression struct {
	Annotation
	Token token.Token
	Label string // Empty when absent
}

func (ce *ContinueExpression) Accept(v Visitor)     { v.VisitContinueExpression(ce) }
func (ce *ContinueExpression) expressionNode()      {}
func (ce *ContinueExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *ContinueExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// ReturnExpression: return [value]
type ReturnExpression struct {
	Annotation
	Token token.Token
	Value Expression // nil returns void
}

func (re *ReturnExpression) Accept(v Visitor)     { v.VisitReturnExpression(re) }
func (re *ReturnExpression) expressionNode()      {}
func (re *ReturnExpression) TokenLiteral() string { return re.Token.Lexeme }
func (re *ReturnExpression) GetToken() token.Token {
	if re == nil {
		return token.Token{}
	}
	return re.Token
}

// Parameter is a declared function parameter.
type Parameter struct {
	Token token.Token
	Name  string
	Type  typesystem.RefType
}

// FunctionLiteral: fn(params) -> ret body
type FunctionLiteral struct {
	Annotation
	Token      token.Token
	Parameters []*Parameter
	ReturnType typesystem.Type
	Body       Expression
}

func (fl *FunctionLiteral) Accept(v Visitor)     { v.VisitFunctionLiteral(fl) }
func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// Signature builds the function type declared by the literal's header.
func (fl *FunctionLiteral) Signature() typesystem.TFunc {
	params := make([]typesystem.RefType, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.Type
	}
	ret := fl.ReturnType
	if ret == nil {
		ret = typesystem.Void
	}
	return typesystem.TFunc{Params: params, Return: ret}
}

// FieldAccess: aggregate.field
type FieldAccess struct {
	Annotation
	Token     token.Token
	Aggregate Expression
	Field     string
}

func (fa *FieldAccess) Accept(v Visitor)     { v.VisitFieldAccess(fa) }
func (fa *FieldAccess) expressionNode()      {}
func (fa *FieldAccess) TokenLiteral() string { return fa.Token.Lexeme }
func (fa *FieldAccess) GetToken() token.Token {
	if fa == nil {
		return token.Token{}
	}
	return fa.Token
}

// LetExpression binds Name for the extent of Body.
// let [mut] name: type = value in body [defer deferred]
// Deferred runs when the scope is left, after Body.
type LetExpression struct {
	Annotation
	Token    token.Token
	Name     string
	Binding  typesystem.RefType
	Value    Expression
	Body     Expression
	Deferred Expression // Optional
}

func (le *LetExpression) Accept(v Visitor)     { v.VisitLetExpression(le) }
func (le *LetExpression) expressionNode()      {}
func (le *LetExpression) TokenLiteral() string { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token {
	if le == nil {
		return token.Token{}
	}
	return le.Token
}

// CastExpression: value as target
type CastExpression struct {
	Annotation
	Token  token.Token
	Target typesystem.Type
	Value  Expression
}

func (ce *CastExpression) Accept(v Visitor)     { v.VisitCastExpression(ce) }
func (ce *CastExpression) expressionNode()      {}
func (ce *CastExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CastExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// Identifier refers to a parameter, a let binding or a top-level name.
// Namespaced names use "::" separators.
type Identifier struct {
	Annotation
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}
