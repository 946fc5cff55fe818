package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func (a *Annotator) inferLet(ctx context.Context, n *ast.LetExpression) (ts.Type, ts.Class, error) {
	if n.Binding.Type == nil {
		return nil, ts.Value(), nodeError(diagnostics.ErrMalformedNode, n, "binding %s has no type", n.Name)
	}
	if _, err := a.visitChild(ctx, n, "initializer", n.Value); err != nil {
		return nil, ts.Value(), err
	}
	if !ts.TypesEqual(n.Binding.Type, n.Value.Type()) {
		return nil, ts.Value(), mismatch(n.Value, n.Binding.Type, n.Value.Type(), "initializer of %s has the wrong type", n.Name)
	}

	if !a.stack.EnterScope(n.Name, n.Binding) {
		return nil, ts.Value(), nodeError(diagnostics.ErrNoEnclosingFunction, n, "let %s outside of a function", n.Name)
	}
	defer a.stack.ExitScope()

	class, err := a.visitChild(ctx, n, "body", n.Body)
	if err != nil {
		return nil, ts.Value(), err
	}
	// The deferred expression sees the binding and runs on scope exit.
	if n.Deferred != nil {
		if _, err := a.visit(ctx, n.Deferred); err != nil {
			return nil, ts.Value(), err
		}
	}
	return n.Body.Type(), class, nil
}

func (a *Annotator) inferIdentifier(n *ast.Identifier) (ts.Type, ts.Class, error) {
	sym, ok := a.stack.Resolve(n.Value, a.namespace...)
	if !ok {
		return nil, ts.Value(), nodeError(diagnostics.ErrUnknownIdentifier, n, "unknown identifier %s", n.Value)
	}
	return sym.Type.Type, ts.ReferenceTo(sym.Type), nil
}

func (a *Annotator) inferFieldAccess(ctx context.Context, n *ast.FieldAccess) (ts.Type, ts.Class, error) {
	class, err := a.visitChild(ctx, n, "aggregate", n.Aggregate)
	if err != nil {
		return nil, ts.Value(), err
	}

	var (
		field ts.Field
		found bool
	)
	switch agg := n.Aggregate.Type().(type) {
	case ts.TStruct:
		field, found = agg.Lookup(n.Field)
	case ts.TUnion:
		field, found = agg.Lookup(n.Field)
	default:
		return nil, ts.Value(), unsupported(n, agg, "field access on non-aggregate %s", agg)
	}
	if !found {
		err := nodeError(diagnostics.ErrUnknownField, n, "%s has no field %s", n.Aggregate.Type(), n.Field)
		err.Actual = n.Aggregate.Type()
		return nil, ts.Value(), err
	}
	// Fields inherit the storage class of their aggregate.
	return field.Type, class, nil
}

func (a *Annotator) inferCast(ctx context.Context, n *ast.CastExpression) (ts.Type, ts.Class, error) {
	if n.Target == nil {
		return nil, ts.Value(), nodeError(diagnostics.ErrMalformedNode, n, "cast has no target type")
	}
	if _, err := a.visitChild(ctx, n, "operand", n.Value); err != nil {
		return nil, ts.Value(), err
	}
	if !ts.Castable(n.Value.Type(), n.Target) {
		return nil, ts.Value(), nodeError(diagnostics.ErrInvalidCast, n, "cannot cast %s to %s", n.Value.Type(), n.Target).
			WithTypes(n.Target, n.Value.Type())
	}
	return n.Target, ts.Value(), nil
}
