package typesystem

import "testing"

func TestCastable(t *testing.T) {
	handle := TNewtype{Name: "Handle"}
	point := TStruct{Fields: []Field{{Name: "x", Type: I32}}}

	tests := []struct {
		name     string
		from, to Type
		want     bool
	}{
		{"widen int", I8, I64, true},
		{"narrow int", I64, I8, true},
		{"signedness", I32, U32, true},
		{"int to float", I32, Float32, false},
		{"float to int", Float64, I32, false},
		{"float precision", Float32, Float80, true},
		{"float to bool", Float64, Bool, true},
		{"int to bool", U8, Bool, true},
		{"bool to int", Bool, I32, false},
		{"pointer to bool", TPtr{To: Const(I32)}, Bool, false},
		{"void to int", Void, I32, false},
		{"void to void", Void, Void, false},
		{"int to void", I32, Void, true},
		{"struct to void", point, Void, true},
		{"pointer qualifiers", TPtr{To: Const(I32)}, TPtr{To: Mut(I32)}, true},
		{"pointer pointee", TPtr{To: Const(I32)}, TPtr{To: RefType{Type: Float64, Volatile: true}}, true},
		{"pointer to int", TPtr{To: Const(I32)}, U64, false},
		{"int to pointer", U64, TPtr{To: Const(I32)}, false},
		{"identity struct", point, point, true},
		{"int to struct", I32, point, false},
		{"identity newtype", handle, handle, true},
		{"newtype is not unwrapped", handle, I32, false},
		{"into newtype", I32, handle, false},
		{"function identity", TFunc{Return: Void}, TFunc{Return: Void}, true},
		{"function to function", TFunc{Return: Void}, TFunc{Return: I32}, false},
		{"nil source", nil, I32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Castable(tt.from, tt.to); got != tt.want {
				t.Errorf("Castable(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestClass(t *testing.T) {
	v := Value()
	if v.IsReference() || v.IsMutable() || v.IsVolatile() {
		t.Errorf("Value() = %s, want plain value", v)
	}

	r := Reference(true, false)
	if !r.IsReference() || !r.IsMutable() || r.IsVolatile() {
		t.Errorf("Reference(true, false) = %s", r)
	}

	if got := ReferenceTo(RefType{Type: I32, Volatile: true}).String(); got != "ref vol" {
		t.Errorf("String() = %q, want %q", got, "ref vol")
	}
	if Reference(false, false) == Value() {
		t.Errorf("immutable reference must differ from value")
	}
}
