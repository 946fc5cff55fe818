package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func (a *Annotator) inferIf(ctx context.Context, n *ast.IfExpression) (ts.Type, ts.Class, error) {
	if err := a.condition(ctx, n, n.Condition); err != nil {
		return nil, ts.Value(), err
	}
	if _, err := a.visitChild(ctx, n, "consequence", n.Consequence); err != nil {
		return nil, ts.Value(), err
	}
	if n.Alternative == nil {
		return ts.Void, ts.Value(), nil
	}
	if _, err := a.visit(ctx, n.Alternative); err != nil {
		return nil, ts.Value(), err
	}

	then, els := n.Consequence.Type(), n.Alternative.Type()
	if ts.TypesEqual(then, els) {
		return then, ts.Value(), nil
	}
	return ts.Void, ts.Value(), nil
}

func (a *Annotator) inferWhile(ctx context.Context, n *ast.WhileExpression) (ts.Type, ts.Class, error) {
	if err := a.condition(ctx, n, n.Condition); err != nil {
		return nil, ts.Value(), err
	}
	if _, err := a.visitChild(ctx, n, "body", n.Body); err != nil {
		return nil, ts.Value(), err
	}
	return ts.Void, ts.Value(), nil
}

// condition annotates cond and requires it to be bool.
func (a *Annotator) condition(ctx context.Context, parent, cond ast.Expression) error {
	if _, err := a.visitChild(ctx, parent, "condition", cond); err != nil {
		return err
	}
	if !ts.IsKind(cond.Type(), ts.KindBool) {
		return mismatch(cond, ts.Bool, cond.Type(), "condition must be bool")
	}
	return nil
}
