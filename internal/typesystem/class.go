package typesystem

// Class is the reference classification of an expression: either a
// transient value or a reference to a storage location, which may be
// mutable and/or volatile. The zero Class is a value.
type Class struct {
	ref      bool
	mutable  bool
	volatile bool
}

// Value classifies an expression that does not denote storage.
func Value() Class { return Class{} }

// Reference classifies an expression that denotes storage with the given
// qualifiers.
func Reference(mutable, volatile bool) Class {
	return Class{ref: true, mutable: mutable, volatile: volatile}
}

// ReferenceTo classifies an expression denoting a location of type r.
func ReferenceTo(r RefType) Class {
	return Reference(r.Mutable, r.Volatile)
}

func (c Class) IsReference() bool { return c.ref }

// IsMutable reports whether the expression is a reference that may be
// written through.
func (c Class) IsMutable() bool { return c.ref && c.mutable }

func (c Class) IsVolatile() bool { return c.ref && c.volatile }

func (c Class) String() string {
	if !c.ref {
		return "value"
	}
	s := "ref"
	if c.mutable {
		s += " mut"
	}
	if c.volatile {
		s += " vol"
	}
	return s
}
