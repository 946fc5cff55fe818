package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/silversquirl/elide-c/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.BinaryOperator]int{
	ast.OpSequence:     1,
	ast.OpAssign:       2,
	ast.OpBoolOr:       3,
	ast.OpBoolAnd:      4,
	ast.OpBitOr:        5,
	ast.OpBitXor:       6,
	ast.OpBitAnd:       7,
	ast.OpEqual:        8,
	ast.OpNotEqual:     8,
	ast.OpLess:         9,
	ast.OpGreater:      9,
	ast.OpLessEqual:    9,
	ast.OpGreaterEqual: 9,
	ast.OpShiftLeft:    10,
	ast.OpShiftRight:   10,
	ast.OpAdd:          11,
	ast.OpSub:          11,
	ast.OpMul:          12,
	ast.OpDiv:          12,
	ast.OpMod:          12,
}

const prefixPrecedence = 13

func getPrecedence(op ast.BinaryOperator) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return prefixPrecedence
}

// Right-associative operators
var rightAssoc = map[ast.BinaryOperator]bool{
	ast.OpAssign: true,
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Expression renders e as source text on a single line.
func Expression(e ast.Expression) string {
	p := NewCodePrinter()
	p.printExpr(e, 0, false)
	return p.String()
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		prec := getPrecedence(e.Operator)
		needParens := prec < parentPrec
		// For same precedence, check associativity
		if prec == parentPrec {
			if isRight && !rightAssoc[e.Operator] {
				needParens = true
			} else if !isRight && rightAssoc[e.Operator] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		if e.Operator == ast.OpSequence {
			p.write(", ")
		} else {
			p.write(" " + e.Operator.String() + " ")
		}
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.UnaryExpression:
		p.printUnary(e, parentPrec)
	default:
		expr.Accept(p)
	}
}

func (p *CodePrinter) printUnary(e *ast.UnaryExpression, parentPrec int) {
	needParens := parentPrec > prefixPrecedence
	if needParens {
		p.write("(")
	}
	switch e.Operator {
	case ast.OpPostInc, ast.OpPostDec:
		p.printExpr(e.Operand, prefixPrecedence+1, false)
		p.write(strings.Trim(e.Operator.String(), "_"))
	case ast.OpSizeof:
		p.write("sizeof(")
		p.printExpr(e.Operand, 0, false)
		p.write(")")
	default:
		p.write(strings.Trim(e.Operator.String(), "_"))
		p.printExpr(e.Operand, prefixPrecedence, false)
	}
	if needParens {
		p.write(")")
	}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, decl := range n.Declarations {
		if decl != nil {
			decl.Accept(p)
		} else {
			p.write("<???>")
		}
		p.writeln()
	}
}

func (p *CodePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.writeIndent()
	p.write("fn " + n.Name)
	if n.Function == nil {
		p.write(" <???>")
		return
	}
	p.printSignature(n.Function)
	p.write(" ")
	p.printExpr(n.Function.Body, 0, false)
}

func (p *CodePrinter) VisitGlobalDeclaration(n *ast.GlobalDeclaration) {
	p.writeIndent()
	p.write("var " + n.Name + ": " + n.Binding.String())
	if n.Value != nil {
		p.write(" = ")
		p.printExpr(n.Value, 0, false)
	}
}

func (p *CodePrinter) VisitNamespace(n *ast.Namespace) {
	p.writeIndent()
	p.write("namespace " + n.Name + " {")
	p.writeln()
	p.indent++
	for _, decl := range n.Declarations {
		decl.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) printSignature(n *ast.FunctionLiteral) {
	p.write("(")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		if param == nil {
			p.write("<???>")
			continue
		}
		p.write(param.Name + ": " + param.Type.String())
	}
	p.write(")")
	if n.ReturnType != nil {
		p.write(" -> " + n.ReturnType.String())
	}
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) { p.printExpr(n, 0, false) }
func (p *CodePrinter) VisitUnaryExpression(n *ast.UnaryExpression)   { p.printUnary(n, 0) }

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.printExpr(n.Function, prefixPrecedence+1, false)
	p.write("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		// Arguments bind tighter than the sequence operator.
		p.printExpr(arg, getPrecedence(ast.OpSequence)+1, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.write("if ")
	p.printExpr(n.Condition, 0, false)
	p.write(" then ")
	p.printExpr(n.Consequence, 0, false)
	if n.Alternative != nil {
		p.write(" else ")
		p.printExpr(n.Alternative, 0, false)
	}
}

func (p *CodePrinter) VisitWhileExpression(n *ast.WhileExpression) {
	p.write("while ")
	p.printExpr(n.Condition, 0, false)
	p.write(" do ")
	p.printExpr(n.Body, 0, false)
}

func (p *CodePrinter) VisitBreakExpression(n *ast.BreakExpression) {
	p.write("break")
	if n.Label != "" {
		p.write(" " + n.Label)
	}
}

func (p *CodePrinter) VisitContinueExpression(n *ast.ContinueExpression) {
	p.write("continue")
	if n.Label != "" {
		p.write(" " + n.Label)
	}
}

func (p *CodePrinter) VisitReturnExpression(n *ast.ReturnExpression) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value, 0, false)
	}
}

func (p *CodePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	p.write("fn")
	p.printSignature(n)
	p.write(" ")
	p.printExpr(n.Body, 0, false)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	if n.Kind.Signed {
		p.write(strconv.FormatInt(int64(n.Value), 10))
	} else {
		p.write(strconv.FormatUint(n.Value, 10))
	}
	p.write(n.Kind.String())
}

func (p *CodePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
	p.write(n.Kind.String())
}

func (p *CodePrinter) VisitBoolLiteral(n *ast.BoolLiteral) {
	p.write(strconv.FormatBool(n.Value))
}

func (p *CodePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.write("[")
	p.printList(n.Elements)
	p.write("]")
}

func (p *CodePrinter) VisitCompositeLiteral(n *ast.CompositeLiteral) {
	if n.Declared != nil {
		p.write(n.Declared.String())
	}
	p.write("{")
	p.printList(n.Values)
	p.write("}")
}

func (p *CodePrinter) printList(items []ast.Expression) {
	for i, item := range items {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(item, getPrecedence(ast.OpSequence)+1, false)
	}
}

func (p *CodePrinter) VisitFieldAccess(n *ast.FieldAccess) {
	p.printExpr(n.Aggregate, prefixPrecedence+1, false)
	p.write("." + n.Field)
}

func (p *CodePrinter) VisitLetExpression(n *ast.LetExpression) {
	p.write("let " + n.Name + ": " + n.Binding.String() + " = ")
	p.printExpr(n.Value, 0, false)
	p.write(" in ")
	p.printExpr(n.Body, 0, false)
	if n.Deferred != nil {
		p.write(" defer ")
		p.printExpr(n.Deferred, 0, false)
	}
}

func (p *CodePrinter) VisitCastExpression(n *ast.CastExpression) {
	p.write("(")
	p.printExpr(n.Value, 0, false)
	p.write(" as ")
	if n.Target != nil {
		p.write(n.Target.String())
	} else {
		p.write("<???>")
	}
	p.write(")")
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}
