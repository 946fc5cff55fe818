package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/silversquirl/elide-c/internal/analyzer"
	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/pipeline"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

func expectCode(t *testing.T, err error, code diagnostics.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s, got none", code)
	}
	de, ok := err.(*diagnostics.DiagnosticError)
	if !ok {
		t.Fatalf("expected *DiagnosticError, got %T: %v", err, err)
	}
	if de.Code != code {
		t.Fatalf("expected error %s, got %s", code, err)
	}
}

func TestLoadFixture(t *testing.T) {
	prog, err := Load(filepath.Join("testdata", "counter.tree.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.File != "counter.el" {
		t.Errorf("expected file counter.el, got %q", prog.File)
	}
	if len(prog.Declarations) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(prog.Declarations))
	}

	global, ok := prog.Declarations[0].(*ast.GlobalDeclaration)
	if !ok {
		t.Fatalf("expected a global, got %T", prog.Declarations[0])
	}
	if !ts.RefTypesEqual(global.Binding, ts.Mut(ts.U64)) {
		t.Errorf("expected mut u64, got %s", global.Binding)
	}
	if global.Token.Line != 4 {
		t.Errorf("expected the global on line 4, got %d", global.Token.Line)
	}

	ns, ok := prog.Declarations[1].(*ast.Namespace)
	if !ok || ns.Name != "mem" || len(ns.Declarations) != 2 {
		t.Fatalf("unexpected namespace %+v", prog.Declarations[1])
	}

	main, ok := prog.Declarations[2].(*ast.FunctionDeclaration)
	if !ok || main.Name != "main" {
		t.Fatalf("unexpected declaration %+v", prog.Declarations[2])
	}
	body, ok := main.Function.Body.(*ast.LetExpression)
	if !ok {
		t.Fatalf("expected a let body, got %T", main.Function.Body)
	}
	if body.Deferred == nil {
		t.Errorf("deferred expression was dropped")
	}
	want := ts.TPtr{To: ts.Mut(ts.I32)}
	if !ts.TypesEqual(body.Binding.Type, want) {
		t.Errorf("expected %s, got %s", want, body.Binding.Type)
	}
}

func TestFixtureAnnotates(t *testing.T) {
	unit := pipeline.NewUnit(context.Background(), nil, filepath.Join("testdata", "counter.tree.yaml"), nil)
	out := pipeline.New(&LoaderProcessor{}, &analyzer.AnnotatorProcessor{}).Run(unit)
	if out.Failed() {
		t.Fatalf("unexpected errors: %v", out.Errors)
	}
	if out.Globals.Len() != 4 {
		t.Errorf("expected 4 globals, got %d", out.Globals.Len())
	}
	main := out.Program.Declarations[2].(*ast.FunctionDeclaration)
	if !ts.TypesEqual(main.Function.Body.Type(), ts.Void) {
		t.Errorf("expected the let to take the sequence's type, got %s", main.Function.Body.Type())
	}
}

func TestParseExpressions(t *testing.T) {
	unit := func(body string) []byte {
		return []byte("declarations:\n  - func:\n      name: f\n      body: " + body + "\n")
	}
	bodyOf := func(t *testing.T, src []byte) ast.Expression {
		t.Helper()
		prog, err := Parse(src, "test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return prog.Declarations[0].(*ast.FunctionDeclaration).Function.Body
	}

	t.Run("bare identifier", func(t *testing.T) {
		id, ok := bodyOf(t, unit("x")).(*ast.Identifier)
		if !ok || id.Value != "x" {
			t.Fatalf("expected identifier x, got %#v", id)
		}
	})

	t.Run("signed literal", func(t *testing.T) {
		lit := bodyOf(t, unit("{kind: int, type: i8, value: -1}")).(*ast.IntegerLiteral)
		if lit.Value != 0xffffffffffffffff || !ts.TypesEqual(lit.Kind, ts.I8) {
			t.Errorf("unexpected literal %+v", lit)
		}
	})

	t.Run("float literal", func(t *testing.T) {
		lit := bodyOf(t, unit("{kind: float, type: f32, value: 1.5}")).(*ast.FloatLiteral)
		if lit.Value != 1.5 || !ts.TypesEqual(lit.Kind, ts.Float32) {
			t.Errorf("unexpected literal %+v", lit)
		}
	})

	t.Run("cast to function pointer", func(t *testing.T) {
		c := bodyOf(t, unit("{kind: cast, to: {ptr: {to: {func: {params: [i32, {type: u8, mut: true}], ret: bool}}}}, value: p}")).(*ast.CastExpression)
		want := ts.TPtr{To: ts.Const(ts.TFunc{
			Params: []ts.RefType{ts.Const(ts.I32), ts.Mut(ts.U8)},
			Return: ts.Bool,
		})}
		if !ts.TypesEqual(c.Target, want) {
			t.Errorf("expected %s, got %s", want, c.Target)
		}
	})

	t.Run("break with label", func(t *testing.T) {
		b := bodyOf(t, unit("{kind: break, label: outer}")).(*ast.BreakExpression)
		if b.Label != "outer" {
			t.Errorf("expected label outer, got %q", b.Label)
		}
	})

	t.Run("array literal", func(t *testing.T) {
		a := bodyOf(t, unit("{kind: array, type: {newtype: vec}, elements: [a, b]}")).(*ast.ArrayLiteral)
		if len(a.Elements) != 2 || !ts.TypesEqual(a.Declared, ts.TNewtype{Name: "vec"}) {
			t.Errorf("unexpected array %+v", a)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diagnostics.ErrorCode
	}{
		{"empty document", "", diagnostics.ErrLoadMissing},
		{"not yaml", "declarations: [", diagnostics.ErrLoadSyntax},
		{"root is a list", "- a", diagnostics.ErrLoadSyntax},
		{"missing declarations", "file: a", diagnostics.ErrLoadMissing},
		{"unknown top-level key", "declarations: []\nextra: 1", diagnostics.ErrLoadUnknown},
		{"unknown declaration", "declarations: [{class: {name: a}}]", diagnostics.ErrLoadUnknown},
		{"unknown type", "declarations: [{global: {name: a, type: i128}}]", diagnostics.ErrLoadUnknown},
		{"global without type", "declarations: [{global: {name: a}}]", diagnostics.ErrLoadMissing},
		{"unknown kind", "declarations: [{func: {name: f, body: {kind: lambda}}}]", diagnostics.ErrLoadUnknown},
		{"unknown operator", "declarations: [{func: {name: f, body: {kind: binop, op: pow, left: a, right: b}}}]", diagnostics.ErrLoadUnknown},
		{"integer overflow", "declarations: [{func: {name: f, body: {kind: int, type: u8, value: 256}}}]", diagnostics.ErrLoadSyntax},
		{"int literal with float type", "declarations: [{func: {name: f, body: {kind: int, type: f32, value: 1}}}]", diagnostics.ErrLoadSyntax},
		{"duplicate key", "declarations: [{func: {name: f, name: g, body: x}}]", diagnostics.ErrLoadSyntax},
		{"missing body", "declarations: [{func: {name: f}}]", diagnostics.ErrLoadMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test")
			expectCode(t, err, tt.code)
		})
	}
}

func TestLoaderProcessorMissingFile(t *testing.T) {
	unit := pipeline.NewUnit(context.Background(), nil, filepath.Join(t.TempDir(), "missing.tree.yaml"), nil)
	out := (&LoaderProcessor{}).Process(unit)
	if !out.Failed() || out.Program != nil {
		t.Errorf("expected a read error and no program")
	}
}
