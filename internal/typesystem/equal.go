package typesystem

// TypesEqual reports whether a and b are structurally the same value type.
//
// Struct and union fields are compared in order, newtypes by name only, and
// pointers and function parameters include their qualifiers. A nil operand
// is never equal to anything.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	switch x := a.(type) {
	case TPtr:
		y, ok := b.(TPtr)
		return ok && RefTypesEqual(x.To, y.To)

	case TFunc:
		y, ok := b.(TFunc)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		if !TypesEqual(returnOrVoid(x.Return), returnOrVoid(y.Return)) {
			return false
		}
		for i := range x.Params {
			if !RefTypesEqual(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return true

	case TVoid:
		_, ok := b.(TVoid)
		return ok

	case TBool:
		_, ok := b.(TBool)
		return ok

	case TInt:
		y, ok := b.(TInt)
		return ok && x == y

	case TFloat:
		y, ok := b.(TFloat)
		return ok && x == y

	case TNewtype:
		y, ok := b.(TNewtype)
		return ok && x.Name == y.Name

	case TStruct:
		y, ok := b.(TStruct)
		return ok && fieldsEqual(x.Fields, y.Fields)

	case TUnion:
		y, ok := b.(TUnion)
		return ok && fieldsEqual(x.Fields, y.Fields)
	}

	return false
}

// RefTypesEqual reports whether a and b have the same qualifiers and
// structurally equal referents.
func RefTypesEqual(a, b RefType) bool {
	if a.Mutable != b.Mutable || a.Volatile != b.Volatile {
		return false
	}
	return TypesEqual(a.Type, b.Type)
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if !TypesEqual(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}

// A function header without a return type returns void.
func returnOrVoid(t Type) Type {
	if t == nil {
		return Void
	}
	return t
}
