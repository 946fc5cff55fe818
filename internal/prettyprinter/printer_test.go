package prettyprinter

import (
	"context"
	"strings"
	"testing"

	"github.com/silversquirl/elide-c/internal/analyzer"
	"github.com/silversquirl/elide-c/internal/ast"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func ident(name string) *ast.Identifier { return &ast.Identifier{Value: name} }

func lit(v uint64) *ast.IntegerLiteral { return &ast.IntegerLiteral{Kind: ts.I32, Value: v} }

func bin(op ast.BinaryOperator, l, r ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: l, Right: r}
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{
			"mul binds tighter",
			bin(ast.OpAdd, ident("a"), bin(ast.OpMul, ident("b"), ident("c"))),
			"a + b * c",
		},
		{
			"parens for looser child",
			bin(ast.OpMul, bin(ast.OpAdd, ident("a"), ident("b")), ident("c")),
			"(a + b) * c",
		},
		{
			"left associative",
			bin(ast.OpSub, ident("a"), bin(ast.OpSub, ident("b"), ident("c"))),
			"a - (b - c)",
		},
		{
			"chained assignment",
			bin(ast.OpAssign, ident("x"), bin(ast.OpAssign, ident("y"), lit(5))),
			"x = y = 5i32",
		},
		{
			"sequence",
			bin(ast.OpSequence, ident("a"), ident("b")),
			"a, b",
		},
		{
			"deref of field",
			&ast.UnaryExpression{Operator: ast.OpDeref, Operand: &ast.FieldAccess{Aggregate: ident("s"), Field: "p"}},
			"*s.p",
		},
		{
			"postfix",
			&ast.UnaryExpression{Operator: ast.OpPostInc, Operand: ident("i")},
			"i++",
		},
		{
			"call with sequence argument",
			&ast.CallExpression{Function: ident("f"), Arguments: []ast.Expression{bin(ast.OpSequence, ident("a"), ident("b")), lit(1)}},
			"f((a, b), 1i32)",
		},
		{
			"negative literal",
			&ast.IntegerLiteral{Kind: ts.I8, Value: ^uint64(0)},
			"-1i8",
		},
		{
			"cast",
			&ast.CastExpression{Target: ts.Bool, Value: ident("x")},
			"(x as bool)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expression(tt.expr); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDumpShowsAnnotations(t *testing.T) {
	body := &ast.ReturnExpression{Value: bin(ast.OpAdd, ident("n"), lit(1))}
	prog := &ast.Program{
		File: "inc.el",
		Declarations: []ast.Declaration{
			&ast.FunctionDeclaration{Name: "inc", Function: &ast.FunctionLiteral{
				Parameters: []*ast.Parameter{{Name: "n", Type: ts.Const(ts.I32)}},
				ReturnType: ts.I32,
				Body:       body,
			}},
		},
	}

	before := Dump(prog)
	if !strings.Contains(before, "ident n : <unset>") {
		t.Errorf("unannotated tree should show <unset>:\n%s", before)
	}

	if err := analyzer.New(nil).AnnotateProgram(context.Background(), prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"unit inc.el",
		"func inc",
		"  fn(n: i32) -> i32 : fn(i32) -> i32",
		"    return : void",
		"      add : i32",
		"        ident n : i32",
		"        1 : i32",
		"",
	}, "\n")
	if got := Dump(prog); got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestCodePrinterProgram(t *testing.T) {
	prog := &ast.Program{Declarations: []ast.Declaration{
		&ast.Namespace{Name: "mem", Declarations: []ast.Declaration{
			&ast.GlobalDeclaration{Name: "limit", Binding: ts.Mut(ts.U64)},
		}},
	}}
	p := NewCodePrinter()
	prog.Accept(p)
	want := "namespace mem {\n    var limit: mut u64\n}\n"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
