package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func (a *Annotator) inferBinary(ctx context.Context, n *ast.BinaryExpression) (ts.Type, ts.Class, error) {
	leftClass, err := a.visitChild(ctx, n, "left operand", n.Left)
	if err != nil {
		return nil, ts.Value(), err
	}
	rightClass, err := a.visitChild(ctx, n, "right operand", n.Right)
	if err != nil {
		return nil, ts.Value(), err
	}
	left, right := n.Left.Type(), n.Right.Type()

	// The left side of a sequence is evaluated for effect only.
	if n.Operator == ast.OpSequence {
		return right, rightClass, nil
	}

	if isVoid(left) || isVoid(right) {
		return nil, ts.Value(), nodeError(diagnostics.ErrVoidOperand, n, "operand of %s is void", n.Operator).
			WithTypes(left, right)
	}

	switch n.Operator {
	case ast.OpAdd:
		return inferAdd(n, left, right)
	case ast.OpSub:
		return inferSub(n, left, right)

	case ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpShiftLeft, ast.OpShiftRight:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		if !ts.IsKind(left, ts.KindInt, ts.KindFloat) {
			return nil, ts.Value(), unsupported(n, left, "%s needs integer or float operands", n.Operator)
		}
		return left, ts.Value(), nil

	case ast.OpBoolAnd, ast.OpBoolOr:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		if !ts.IsKind(left, ts.KindBool) {
			return nil, ts.Value(), unsupported(n, left, "%s needs bool operands", n.Operator)
		}
		return ts.Bool, ts.Value(), nil

	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		if !ts.IsKind(left, ts.KindInt) {
			return nil, ts.Value(), unsupported(n, left, "%s needs integer operands", n.Operator)
		}
		return left, ts.Value(), nil

	case ast.OpEqual, ast.OpNotEqual:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		return ts.Bool, ts.Value(), nil

	case ast.OpGreater, ast.OpLess, ast.OpGreaterEqual, ast.OpLessEqual:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		if !ts.IsKind(left, ts.KindInt, ts.KindFloat, ts.KindPtr) {
			return nil, ts.Value(), unsupported(n, left, "%s needs integer, float or pointer operands", n.Operator)
		}
		return ts.Bool, ts.Value(), nil

	case ast.OpAssign:
		if err := requireEqual(n, left, right); err != nil {
			return nil, ts.Value(), err
		}
		if err := requireMutable(n, leftClass, "assignment target"); err != nil {
			return nil, ts.Value(), err
		}
		// The assignment is itself addressable so it can be chained.
		return left, leftClass, nil

	default:
		return nil, ts.Value(), nodeError(diagnostics.ErrMalformedNode, n, "unknown binary operator %d", int(n.Operator))
	}
}

// inferAdd allows pointer + integer in either order.
func inferAdd(n *ast.BinaryExpression, left, right ts.Type) (ts.Type, ts.Class, error) {
	switch {
	case ts.IsKind(left, ts.KindPtr):
		if !ts.IsKind(right, ts.KindInt) {
			return nil, ts.Value(), unsupported(n, right, "pointer offset must be an integer")
		}
		return left, ts.Value(), nil
	case ts.IsKind(right, ts.KindPtr):
		if !ts.IsKind(left, ts.KindInt) {
			return nil, ts.Value(), unsupported(n, left, "pointer offset must be an integer")
		}
		return right, ts.Value(), nil
	}
	if err := requireEqual(n, left, right); err != nil {
		return nil, ts.Value(), err
	}
	if !ts.IsKind(left, ts.KindInt, ts.KindFloat) {
		return nil, ts.Value(), unsupported(n, left, "+ needs integer, float or pointer operands")
	}
	return left, ts.Value(), nil
}

// inferSub allows pointer - integer, yielding the pointer, and the difference
// of two equal pointers, yielding u64.
func inferSub(n *ast.BinaryExpression, left, right ts.Type) (ts.Type, ts.Class, error) {
	if ts.IsKind(left, ts.KindPtr) && ts.IsKind(right, ts.KindInt) {
		return left, ts.Value(), nil
	}
	if err := requireEqual(n, left, right); err != nil {
		return nil, ts.Value(), err
	}
	switch ts.KindOf(left) {
	case ts.KindPtr:
		return ts.U64, ts.Value(), nil
	case ts.KindInt, ts.KindFloat:
		return left, ts.Value(), nil
	default:
		return nil, ts.Value(), unsupported(n, left, "- needs integer, float or pointer operands")
	}
}

func (a *Annotator) inferUnary(ctx context.Context, n *ast.UnaryExpression) (ts.Type, ts.Class, error) {
	class, err := a.visitChild(ctx, n, "operand", n.Operand)
	if err != nil {
		return nil, ts.Value(), err
	}
	operand := n.Operand.Type()

	// sizeof only needs its operand to be well typed.
	if n.Operator == ast.OpSizeof {
		return ts.U64, ts.Value(), nil
	}
	if isVoid(operand) {
		err := nodeError(diagnostics.ErrVoidOperand, n, "operand of %s is void", n.Operator)
		err.Actual = operand
		return nil, ts.Value(), err
	}

	switch n.Operator {
	case ast.OpRef:
		if !class.IsReference() {
			return nil, ts.Value(), nodeError(diagnostics.ErrNotAReference, n, "cannot take the address of a value")
		}
		ptr := ts.TPtr{To: ts.RefType{
			Type:     operand,
			Mutable:  class.IsMutable(),
			Volatile: class.IsVolatile(),
		}}
		return ptr, ts.Value(), nil

	case ast.OpDeref:
		ptr, ok := operand.(ts.TPtr)
		if !ok {
			err := nodeError(diagnostics.ErrNotAPointer, n, "cannot dereference %s", operand)
			err.Actual = operand
			return nil, ts.Value(), err
		}
		return ptr.To.Type, ts.ReferenceTo(ptr.To), nil

	case ast.OpPreInc, ast.OpPostInc, ast.OpPreDec, ast.OpPostDec:
		if err := requireMutable(n, class, "operand of "+n.Operator.Name()); err != nil {
			return nil, ts.Value(), err
		}
		fallthrough
	case ast.OpPlus:
		if !ts.IsKind(operand, ts.KindInt, ts.KindFloat) {
			return nil, ts.Value(), unsupported(n, operand, "%s needs an integer or float operand", n.Operator)
		}
		return operand, ts.Value(), nil

	case ast.OpMinus:
		switch t := operand.(type) {
		case ts.TFloat:
			return t, ts.Value(), nil
		case ts.TInt:
			if !t.Signed {
				return nil, ts.Value(), unsupported(n, t, "cannot negate unsigned %s", t)
			}
			return t, ts.Value(), nil
		}
		return nil, ts.Value(), unsupported(n, operand, "- needs an integer or float operand")

	case ast.OpBitNot:
		if !ts.IsKind(operand, ts.KindInt) {
			return nil, ts.Value(), unsupported(n, operand, "~ needs an integer operand")
		}
		return operand, ts.Value(), nil

	case ast.OpBoolNot:
		if !ts.IsKind(operand, ts.KindBool) {
			return nil, ts.Value(), unsupported(n, operand, "! needs a bool operand")
		}
		return ts.Bool, ts.Value(), nil

	default:
		return nil, ts.Value(), nodeError(diagnostics.ErrMalformedNode, n, "unknown unary operator %d", int(n.Operator))
	}
}

func requireEqual(n *ast.BinaryExpression, left, right ts.Type) error {
	if ts.TypesEqual(left, right) {
		return nil
	}
	return mismatch(n, left, right, "operands of %s have different types", n.Operator)
}

// requireMutable checks that class denotes writable storage.
func requireMutable(node positioned, class ts.Class, what string) error {
	if !class.IsReference() {
		return nodeError(diagnostics.ErrNotAReference, node, "%s is not addressable", what)
	}
	if !class.IsMutable() {
		return nodeError(diagnostics.ErrNotMutable, node, "%s is not mutable", what)
	}
	return nil
}
