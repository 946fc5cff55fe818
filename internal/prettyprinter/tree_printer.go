package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// --- Tree Printer (Output shows the annotated tree) ---

// TreePrinter writes one node per line, children indented under their
// parent, each expression followed by its annotated type. Unannotated
// expressions show "<unset>".
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Dump renders prog with its annotations.
func Dump(prog *ast.Program) string {
	p := NewTreePrinter()
	prog.Accept(p)
	return p.String()
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// node prints the header of e and then its children one level deeper.
func (p *TreePrinter) node(e ast.Expression, header string, children ...ast.Expression) {
	p.line("%s : %s", header, typeOf(e))
	p.indent++
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Accept(p)
	}
	p.indent--
}

func typeOf(e ast.Expression) string {
	if t := e.Type(); t != nil {
		return t.String()
	}
	return "<unset>"
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	if n.File != "" {
		p.line("unit %s", n.File)
	}
	for _, decl := range n.Declarations {
		decl.Accept(p)
	}
}

func (p *TreePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.line("func %s", n.Name)
	if n.Function != nil {
		p.indent++
		n.Function.Accept(p)
		p.indent--
	}
}

func (p *TreePrinter) VisitGlobalDeclaration(n *ast.GlobalDeclaration) {
	p.line("global %s: %s", n.Name, n.Binding)
	if n.Value != nil {
		p.indent++
		n.Value.Accept(p)
		p.indent--
	}
}

func (p *TreePrinter) VisitNamespace(n *ast.Namespace) {
	p.line("namespace %s", n.Name)
	p.indent++
	for _, decl := range n.Declarations {
		decl.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.node(n, n.Operator.Name(), n.Left, n.Right)
}

func (p *TreePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.node(n, n.Operator.Name(), n.Operand)
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.node(n, "call", append([]ast.Expression{n.Function}, n.Arguments...)...)
}

func (p *TreePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.node(n, "if", n.Condition, n.Consequence, n.Alternative)
}

func (p *TreePrinter) VisitWhileExpression(n *ast.WhileExpression) {
	p.node(n, "while", n.Condition, n.Body)
}

func (p *TreePrinter) VisitBreakExpression(n *ast.BreakExpression) {
	p.node(n, labelled("break", n.Label))
}

func (p *TreePrinter) VisitContinueExpression(n *ast.ContinueExpression) {
	p.node(n, labelled("continue", n.Label))
}

func labelled(word, label string) string {
	if label == "" {
		return word
	}
	return word + " " + label
}

func (p *TreePrinter) VisitReturnExpression(n *ast.ReturnExpression) {
	p.node(n, "return", n.Value)
}

func (p *TreePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	params := make([]string, len(n.Parameters))
	for i, param := range n.Parameters {
		if param == nil {
			params[i] = "<???>"
			continue
		}
		params[i] = param.Name + ": " + param.Type.String()
	}
	ret := n.ReturnType
	if ret == nil {
		ret = typesystem.Void
	}
	header := fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), ret)
	p.node(n, header, n.Body)
}

func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	if n.Kind.Signed {
		p.node(n, strconv.FormatInt(int64(n.Value), 10))
		return
	}
	p.node(n, strconv.FormatUint(n.Value, 10))
}

func (p *TreePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.node(n, strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (p *TreePrinter) VisitBoolLiteral(n *ast.BoolLiteral) {
	p.node(n, strconv.FormatBool(n.Value))
}

func (p *TreePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.node(n, "array", n.Elements...)
}

func (p *TreePrinter) VisitCompositeLiteral(n *ast.CompositeLiteral) {
	p.node(n, "composite", n.Values...)
}

func (p *TreePrinter) VisitFieldAccess(n *ast.FieldAccess) {
	p.node(n, "field ."+n.Field, n.Aggregate)
}

func (p *TreePrinter) VisitLetExpression(n *ast.LetExpression) {
	header := fmt.Sprintf("let %s: %s", n.Name, n.Binding)
	if n.Deferred == nil {
		p.node(n, header, n.Value, n.Body)
		return
	}
	p.line("%s : %s", header, typeOf(n))
	p.indent++
	for _, c := range []ast.Expression{n.Value, n.Body} {
		if c != nil {
			c.Accept(p)
		}
	}
	p.line("defer")
	p.indent++
	n.Deferred.Accept(p)
	p.indent -= 2
}

func (p *TreePrinter) VisitCastExpression(n *ast.CastExpression) {
	target := "<???>"
	if n.Target != nil {
		target = n.Target.String()
	}
	p.node(n, "cast "+target, n.Value)
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.node(n, "ident "+n.Value)
}
