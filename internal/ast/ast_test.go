package ast

import (
	"testing"

	"github.com/silversquirl/elide-c/internal/typesystem"
)

func TestAnnotationWriteOnce(t *testing.T) {
	id := &Identifier{Value: "x"}
	if id.Type() != nil {
		t.Fatalf("fresh node should be unannotated, got %s", id.Type())
	}
	if id.SetType(nil) {
		t.Errorf("SetType(nil) should be refused")
	}
	if !id.SetType(typesystem.I32) {
		t.Fatalf("first SetType should succeed")
	}
	if id.SetType(typesystem.Bool) {
		t.Errorf("second SetType should be refused")
	}
	if !typesystem.TypesEqual(id.Type(), typesystem.I32) {
		t.Errorf("Type() = %s, want i32", id.Type())
	}
}

func TestOperatorLookup(t *testing.T) {
	for i := OpAdd; i <= OpSequence; i++ {
		got, ok := LookupBinaryOperator(i.Name())
		if !ok || got != i {
			t.Errorf("LookupBinaryOperator(%q) = %v, %v", i.Name(), got, ok)
		}
	}
	for i := OpRef; i <= OpMinus; i++ {
		got, ok := LookupUnaryOperator(i.Name())
		if !ok || got != i {
			t.Errorf("LookupUnaryOperator(%q) = %v, %v", i.Name(), got, ok)
		}
	}
	if _, ok := LookupBinaryOperator("pow"); ok {
		t.Errorf("unknown operator should not resolve")
	}
	if OpAssign.String() != "=" || OpDeref.String() != "*" {
		t.Errorf("unexpected operator symbols %q %q", OpAssign, OpDeref)
	}
}

func TestSignature(t *testing.T) {
	fn := &FunctionLiteral{
		Parameters: []*Parameter{
			{Name: "a", Type: typesystem.Mut(typesystem.I32)},
			{Name: "b", Type: typesystem.Const(typesystem.Float64)},
		},
	}
	want := typesystem.TFunc{
		Params: []typesystem.RefType{typesystem.Mut(typesystem.I32), typesystem.Const(typesystem.Float64)},
		Return: typesystem.Void,
	}
	if got := fn.Signature(); !typesystem.TypesEqual(got, want) {
		t.Errorf("Signature() = %s, want %s", got, want)
	}
}
