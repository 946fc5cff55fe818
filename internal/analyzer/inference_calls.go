package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/symbols"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func (a *Annotator) inferCall(ctx context.Context, n *ast.CallExpression) (ts.Type, ts.Class, error) {
	if _, err := a.visitChild(ctx, n, "callee", n.Function); err != nil {
		return nil, ts.Value(), err
	}
	fn, ok := n.Function.Type().(ts.TFunc)
	if !ok {
		err := nodeError(diagnostics.ErrNotAFunction, n, "cannot call a value of type %s", n.Function.Type())
		err.Actual = n.Function.Type()
		return nil, ts.Value(), err
	}
	if len(n.Arguments) != len(fn.Params) {
		return nil, ts.Value(), nodeError(diagnostics.ErrArgumentCountMismatch, n,
			"call passes %d arguments to a function taking %d", len(n.Arguments), len(fn.Params))
	}

	for i, arg := range n.Arguments {
		if _, err := a.visitChild(ctx, n, "argument", arg); err != nil {
			return nil, ts.Value(), err
		}
		want := fn.Params[i].Type
		if !ts.TypesEqual(want, arg.Type()) {
			return nil, ts.Value(), mismatch(arg, want, arg.Type(), "argument %d has the wrong type", i+1)
		}
	}

	ret := fn.Return
	if ret == nil {
		ret = ts.Void
	}
	return ret, ts.Value(), nil
}

func (a *Annotator) inferFunctionLiteral(ctx context.Context, n *ast.FunctionLiteral) (ts.Type, ts.Class, error) {
	if err := checkParameters(n); err != nil {
		return nil, ts.Value(), err
	}
	sig := n.Signature()
	params := make([]symbols.Binding, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = symbols.Binding{Name: p.Name, Type: p.Type}
	}

	a.stack.EnterFunction(params, sig.Return)
	_, err := a.visitChild(ctx, n, "body", n.Body)
	a.stack.ExitFunction()
	if err != nil {
		return nil, ts.Value(), err
	}
	// A function value always denotes addressable code.
	return sig, ts.Reference(false, false), nil
}

// checkParameters rejects headers that Signature cannot describe.
func checkParameters(n *ast.FunctionLiteral) error {
	for i, p := range n.Parameters {
		if p == nil || p.Type.Type == nil {
			return nodeError(diagnostics.ErrMalformedNode, n, "parameter %d has no type", i+1)
		}
	}
	return nil
}

func (a *Annotator) inferReturn(ctx context.Context, n *ast.ReturnExpression) (ts.Type, ts.Class, error) {
	fn := a.stack.Current()
	if fn == nil {
		return nil, ts.Value(), nodeError(diagnostics.ErrNoEnclosingFunction, n, "return outside of a function")
	}

	var got ts.Type = ts.Void
	if n.Value != nil {
		if _, err := a.visit(ctx, n.Value); err != nil {
			return nil, ts.Value(), err
		}
		got = n.Value.Type()
	}
	if !ts.TypesEqual(fn.Return, got) {
		return nil, ts.Value(), nodeError(diagnostics.ErrReturnTypeMismatch, n, "returned value does not match the declared return type").
			WithTypes(fn.Return, got)
	}
	return ts.Void, ts.Value(), nil
}
