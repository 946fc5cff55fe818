package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

// visit annotates e and returns its classification. The node's type slot is
// written only when the whole subtree annotated successfully.
func (a *Annotator) visit(ctx context.Context, e ast.Expression) (ts.Class, error) {
	if err := ctx.Err(); err != nil {
		return ts.Value(), nodeError(diagnostics.ErrCancelled, e, "annotation cancelled: %v", err)
	}
	if e.Type() != nil {
		return ts.Value(), nodeError(diagnostics.ErrAlreadyAnnotated, e, "node was already annotated as %s", e.Type())
	}

	a.depth++
	defer func() { a.depth-- }()
	if a.maxDepth > 0 && a.depth > a.maxDepth {
		return ts.Value(), nodeError(diagnostics.ErrDepthExceeded, e, "expression nesting exceeds %d", a.maxDepth)
	}

	typ, class, err := a.infer(ctx, e)
	if err != nil {
		return ts.Value(), err
	}
	e.SetType(typ)
	return class, nil
}

// visitChild visits a required sub-expression of parent.
func (a *Annotator) visitChild(ctx context.Context, parent ast.Expression, role string, child ast.Expression) (ts.Class, error) {
	if child == nil {
		return ts.Value(), nodeError(diagnostics.ErrMalformedNode, parent, "%s is missing its %s", describe(parent), role)
	}
	return a.visit(ctx, child)
}

func (a *Annotator) infer(ctx context.Context, node ast.Expression) (ts.Type, ts.Class, error) {
	switch n := node.(type) {
	case *ast.BinaryExpression:
		return a.inferBinary(ctx, n)
	case *ast.UnaryExpression:
		return a.inferUnary(ctx, n)
	case *ast.CallExpression:
		return a.inferCall(ctx, n)
	case *ast.IfExpression:
		return a.inferIf(ctx, n)
	case *ast.WhileExpression:
		return a.inferWhile(ctx, n)
	case *ast.BreakExpression, *ast.ContinueExpression:
		return ts.Void, ts.Value(), nil
	case *ast.ReturnExpression:
		return a.inferReturn(ctx, n)
	case *ast.FunctionLiteral:
		return a.inferFunctionLiteral(ctx, n)
	case *ast.IntegerLiteral:
		return n.Kind, ts.Value(), nil
	case *ast.FloatLiteral:
		return n.Kind, ts.Value(), nil
	case *ast.BoolLiteral:
		return ts.Bool, ts.Value(), nil
	case *ast.ArrayLiteral:
		return nil, ts.Value(), nodeError(diagnostics.ErrUnsupportedLiteral, n, "array literals are not supported")
	case *ast.CompositeLiteral:
		return nil, ts.Value(), nodeError(diagnostics.ErrUnsupportedLiteral, n, "composite literals are not supported")
	case *ast.FieldAccess:
		return a.inferFieldAccess(ctx, n)
	case *ast.LetExpression:
		return a.inferLet(ctx, n)
	case *ast.CastExpression:
		return a.inferCast(ctx, n)
	case *ast.Identifier:
		return a.inferIdentifier(n)
	default:
		return nil, ts.Value(), nodeError(diagnostics.ErrMalformedNode, node, "unknown expression %T", node)
	}
}

func describe(e ast.Expression) string {
	switch e.(type) {
	case *ast.BinaryExpression:
		return "binary expression"
	case *ast.UnaryExpression:
		return "unary expression"
	case *ast.CallExpression:
		return "call"
	case *ast.IfExpression:
		return "if"
	case *ast.WhileExpression:
		return "while"
	case *ast.ReturnExpression:
		return "return"
	case *ast.FunctionLiteral:
		return "function literal"
	case *ast.FieldAccess:
		return "field access"
	case *ast.LetExpression:
		return "let"
	case *ast.CastExpression:
		return "cast"
	default:
		return "expression"
	}
}
