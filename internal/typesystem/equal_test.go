package typesystem

import (
	"testing"
)

func sampleTypes() []Type {
	pair := []Field{{Name: "a", Type: I32}, {Name: "b", Type: I32}}
	return []Type{
		Void,
		Bool,
		I8, I32, U32, U64,
		Float32, Float64, Float80,
		TNewtype{Name: "Handle"},
		TNewtype{Name: "Fd"},
		TPtr{To: Mut(I32)},
		TPtr{To: Const(I32)},
		TPtr{To: RefType{Type: I32, Volatile: true}},
		TPtr{To: Const(TPtr{To: Mut(U8)})},
		TFunc{Params: []RefType{Const(I32), Mut(I32)}, Return: I32},
		TFunc{Params: []RefType{Mut(I32), Const(I32)}, Return: I32},
		TFunc{Return: Void},
		TFunc{},
		TStruct{Fields: pair},
		TStruct{Fields: []Field{{Name: "b", Type: I32}, {Name: "a", Type: I32}}},
		TStruct{},
		TUnion{Fields: pair},
	}
}

func TestTypesEqualReflexive(t *testing.T) {
	for _, typ := range sampleTypes() {
		if !TypesEqual(typ, typ) {
			t.Errorf("TypesEqual(%s, %s) = false, want true", typ, typ)
		}
	}
}

func TestTypesEqualSymmetric(t *testing.T) {
	types := sampleTypes()
	for _, a := range types {
		for _, b := range types {
			if TypesEqual(a, b) != TypesEqual(b, a) {
				t.Errorf("TypesEqual not symmetric for %s and %s", a, b)
			}
		}
	}
}

func TestTypesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{
			name: "struct field order matters",
			a:    TStruct{Fields: []Field{{Name: "a", Type: I32}, {Name: "b", Type: I32}}},
			b:    TStruct{Fields: []Field{{Name: "b", Type: I32}, {Name: "a", Type: I32}}},
			want: false,
		},
		{
			name: "struct and union with same fields",
			a:    TStruct{Fields: []Field{{Name: "a", Type: I32}}},
			b:    TUnion{Fields: []Field{{Name: "a", Type: I32}}},
			want: false,
		},
		{
			name: "struct field count",
			a:    TStruct{Fields: []Field{{Name: "a", Type: I32}}},
			b:    TStruct{Fields: []Field{{Name: "a", Type: I32}, {Name: "b", Type: I32}}},
			want: false,
		},
		{
			name: "pointer mutability",
			a:    TPtr{To: Mut(I32)},
			b:    TPtr{To: Const(I32)},
			want: false,
		},
		{
			name: "pointer volatility",
			a:    TPtr{To: RefType{Type: I32, Volatile: true}},
			b:    TPtr{To: Const(I32)},
			want: false,
		},
		{
			name: "pointer pointee",
			a:    TPtr{To: Const(I32)},
			b:    TPtr{To: Const(I64)},
			want: false,
		},
		{
			name: "nested pointers",
			a:    TPtr{To: Mut(TPtr{To: Const(U8)})},
			b:    TPtr{To: Mut(TPtr{To: Const(U8)})},
			want: true,
		},
		{
			name: "newtype is nominal",
			a:    TNewtype{Name: "Meters"},
			b:    TNewtype{Name: "Feet"},
			want: false,
		},
		{
			name: "newtype is never unwrapped",
			a:    TNewtype{Name: "i32"},
			b:    I32,
			want: false,
		},
		{
			name: "int signedness",
			a:    I32,
			b:    U32,
			want: false,
		},
		{
			name: "float precision",
			a:    Float32,
			b:    Float64,
			want: false,
		},
		{
			name: "function arity",
			a:    TFunc{Params: []RefType{Const(I32)}, Return: Void},
			b:    TFunc{Params: []RefType{Const(I32), Const(I32)}, Return: Void},
			want: false,
		},
		{
			name: "function parameter qualifiers",
			a:    TFunc{Params: []RefType{Const(I32)}, Return: Void},
			b:    TFunc{Params: []RefType{Mut(I32)}, Return: Void},
			want: false,
		},
		{
			name: "function return",
			a:    TFunc{Return: I32},
			b:    TFunc{Return: Void},
			want: false,
		},
		{
			name: "missing return is void",
			a:    TFunc{Params: []RefType{Const(I32)}},
			b:    TFunc{Params: []RefType{Const(I32)}, Return: Void},
			want: true,
		},
		{
			name: "missing return is not i32",
			a:    TFunc{},
			b:    TFunc{Return: I32},
			want: false,
		},
		{
			name: "nil is never equal",
			a:    nil,
			b:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("TypesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRefTypesEqual(t *testing.T) {
	if !RefTypesEqual(Mut(I32), Mut(I32)) {
		t.Errorf("identical reference types should be equal")
	}
	if RefTypesEqual(Mut(I32), Const(I32)) {
		t.Errorf("mutability must be part of reference type equality")
	}
	if RefTypesEqual(RefType{Type: I32, Volatile: true}, Const(I32)) {
		t.Errorf("volatility must be part of reference type equality")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{I32, "i32"},
		{U64, "u64"},
		{Float80, "f80"},
		{TPtr{To: Mut(I32)}, "*mut i32"},
		{TPtr{To: RefType{Type: U8, Volatile: true}}, "*vol u8"},
		{TPtr{To: Const(TPtr{To: Mut(Bool)})}, "**mut bool"},
		{TFunc{Params: []RefType{Const(I32), Mut(Float64)}, Return: Void}, "fn(i32, mut f64) -> void"},
		{TStruct{Fields: []Field{{Name: "x", Type: I32}, {Name: "y", Type: I32}}}, "struct { x: i32, y: i32 }"},
		{TUnion{}, "union {}"},
		{TNewtype{Name: "Handle"}, "Handle"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindInvalid {
		t.Errorf("KindOf(nil) = %s, want invalid", KindOf(nil))
	}
	if KindOf(TPtr{To: Const(I32)}) != KindPtr {
		t.Errorf("pointer kind mismatch")
	}
	if !IsKind(Float64, KindInt, KindFloat) {
		t.Errorf("IsKind(f64, int, float) = false")
	}
	if IsKind(Bool, KindInt, KindFloat) {
		t.Errorf("IsKind(bool, int, float) = true")
	}
}
