package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all value types.
// The set of implementations is closed: only this package can add one.
type Type interface {
	String() string
	Kind() Kind
	valueType()
}

// RefType describes the contents of a storage location: a value type plus
// its mutability and volatility qualifiers. It is the pointee of a pointer,
// the shape of a function parameter and the shape of a binding in scope.
type RefType struct {
	Type     Type
	Mutable  bool
	Volatile bool
}

func (r RefType) String() string {
	var sb strings.Builder
	if r.Mutable {
		sb.WriteString("mut ")
	}
	if r.Volatile {
		sb.WriteString("vol ")
	}
	sb.WriteString(typeString(r.Type))
	return sb.String()
}

// Mut is shorthand for a mutable, non-volatile reference to t.
func Mut(t Type) RefType { return RefType{Type: t, Mutable: true} }

// Const is shorthand for an immutable, non-volatile reference to t.
func Const(t Type) RefType { return RefType{Type: t} }

// TPtr is a pointer to a qualified referent.
type TPtr struct {
	To RefType
}

func (t TPtr) String() string { return "*" + t.To.String() }
func (t TPtr) Kind() Kind     { return KindPtr }
func (TPtr) valueType()       {}

// TFunc is a function signature. Parameters are reference types because a
// parameter is a binding with its own qualifiers.
type TFunc struct {
	Params []RefType
	Return Type
}

func (t TFunc) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), typeString(t.Return))
}
func (t TFunc) Kind() Kind { return KindFunc }
func (TFunc) valueType()   {}

// TVoid is the type of expressions that produce no value.
type TVoid struct{}

func (TVoid) String() string { return "void" }
func (TVoid) Kind() Kind     { return KindVoid }
func (TVoid) valueType()     {}

// TInt is a fixed-width integer.
type TInt struct {
	Width  uint8 // 8, 16, 32 or 64
	Signed bool
}

func (t TInt) String() string {
	if t.Signed {
		return fmt.Sprintf("i%d", t.Width)
	}
	return fmt.Sprintf("u%d", t.Width)
}
func (t TInt) Kind() Kind { return KindInt }
func (TInt) valueType()   {}

// Precision selects a floating point format.
type Precision uint8

const (
	F32 Precision = iota
	F64
	F80
)

func (p Precision) String() string {
	switch p {
	case F32:
		return "f32"
	case F64:
		return "f64"
	case F80:
		return "f80"
	default:
		return fmt.Sprintf("f?%d", uint8(p))
	}
}

// TFloat is a floating point number.
type TFloat struct {
	Precision Precision
}

func (t TFloat) String() string { return t.Precision.String() }
func (t TFloat) Kind() Kind     { return KindFloat }
func (TFloat) valueType()       {}

// TNewtype is a nominal type. Two newtypes are the same type iff their names
// match; the underlying representation is never consulted.
type TNewtype struct {
	Name string
}

func (t TNewtype) String() string { return t.Name }
func (t TNewtype) Kind() Kind     { return KindNewtype }
func (TNewtype) valueType()       {}

// Field is a named member of a struct or union. Order is significant.
type Field struct {
	Name string
	Type Type
}

// TStruct is a product of ordered, named fields.
type TStruct struct {
	Fields []Field
}

func (t TStruct) String() string { return "struct " + fieldsString(t.Fields) }
func (t TStruct) Kind() Kind     { return KindStruct }
func (TStruct) valueType()       {}

// Lookup returns the field with the given name.
func (t TStruct) Lookup(name string) (Field, bool) { return lookupField(t.Fields, name) }

// TUnion overlays ordered, named fields in the same storage.
type TUnion struct {
	Fields []Field
}

func (t TUnion) String() string { return "union " + fieldsString(t.Fields) }
func (t TUnion) Kind() Kind     { return KindUnion }
func (TUnion) valueType()       {}

// Lookup returns the field with the given name.
func (t TUnion) Lookup(name string) (Field, bool) { return lookupField(t.Fields, name) }

// TBool is the boolean type.
type TBool struct{}

func (TBool) String() string { return "bool" }
func (TBool) Kind() Kind     { return KindBool }
func (TBool) valueType()     {}

// Commonly used types.
var (
	Void = TVoid{}
	Bool = TBool{}

	I8  = TInt{Width: 8, Signed: true}
	I16 = TInt{Width: 16, Signed: true}
	I32 = TInt{Width: 32, Signed: true}
	I64 = TInt{Width: 64, Signed: true}
	U8  = TInt{Width: 8}
	U16 = TInt{Width: 16}
	U32 = TInt{Width: 32}
	U64 = TInt{Width: 64}

	Float32 = TFloat{Precision: F32}
	Float64 = TFloat{Precision: F64}
	Float80 = TFloat{Precision: F80}
)

func lookupField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func fieldsString(fields []Field) string {
	if len(fields) == 0 {
		return "{}"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, typeString(f.Type))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func typeString(t Type) string {
	if t == nil {
		return "<unset>"
	}
	return t.String()
}
