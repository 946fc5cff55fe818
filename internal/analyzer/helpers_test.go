package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/symbols"
	"github.com/silversquirl/elide-c/internal/token"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

// Tree builders keep the tests close to the source they describe.

func tok(lexeme string) token.Token { return token.Token{Lexeme: lexeme, Line: 1, Column: 1} }

func ident(name string) *ast.Identifier { return &ast.Identifier{Token: tok(name), Value: name} }

func i32(v uint64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Token: tok("int"), Kind: ts.I32, Value: v}
}

func u8(v uint64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Token: tok("int"), Kind: ts.U8, Value: v}
}

func f64(v float64) *ast.FloatLiteral {
	return &ast.FloatLiteral{Token: tok("float"), Kind: ts.Float64, Value: v}
}

func boolean(v bool) *ast.BoolLiteral { return &ast.BoolLiteral{Token: tok("bool"), Value: v} }

func bin(op ast.BinaryOperator, l, r ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Token: tok(op.String()), Operator: op, Left: l, Right: r}
}

func un(op ast.UnaryOperator, x ast.Expression) *ast.UnaryExpression {
	return &ast.UnaryExpression{Token: tok(op.String()), Operator: op, Operand: x}
}

func call(fn ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Token: tok("("), Function: fn, Arguments: args}
}

func field(agg ast.Expression, name string) *ast.FieldAccess {
	return &ast.FieldAccess{Token: tok("."), Aggregate: agg, Field: name}
}

func let(name string, binding ts.RefType, value, body ast.Expression) *ast.LetExpression {
	return &ast.LetExpression{Token: tok("let"), Name: name, Binding: binding, Value: value, Body: body}
}

func param(name string, typ ts.RefType) *ast.Parameter {
	return &ast.Parameter{Token: tok(name), Name: name, Type: typ}
}

func fn(ret ts.Type, body ast.Expression, params ...*ast.Parameter) *ast.FunctionLiteral {
	return &ast.FunctionLiteral{Token: tok("fn"), Parameters: params, ReturnType: ret, Body: body}
}

func ret(v ast.Expression) *ast.ReturnExpression {
	return &ast.ReturnExpression{Token: tok("return"), Value: v}
}

var point = ts.TStruct{Fields: []ts.Field{{Name: "x", Type: ts.I32}, {Name: "y", Type: ts.I32}}}

// inFunction annotates e inside a function context holding params.
func inFunction(t *testing.T, params []symbols.Binding, e ast.Expression) (ts.Class, error) {
	t.Helper()
	a := New(nil)
	a.stack.EnterFunction(params, ts.Void)
	defer a.stack.ExitFunction()
	return a.Annotate(context.Background(), e)
}

func expectCode(t *testing.T, err error, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s, got none", code)
	}
	var de *diagnostics.DiagnosticError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DiagnosticError, got %T: %v", err, err)
	}
	if de.Code != code {
		t.Fatalf("expected error %s, got %s", code, err)
	}
	return de
}

func expectType(t *testing.T, e ast.Expression, want ts.Type) {
	t.Helper()
	if !ts.TypesEqual(e.Type(), want) {
		t.Errorf("expected type %s, got %s", want, e.Type())
	}
}
