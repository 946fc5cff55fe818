package typesystem

// Kind is the coarse kind of a value type: its top-level tag, ignoring
// widths, qualifiers and payloads.
type Kind int

const (
	KindInvalid Kind = iota
	KindPtr
	KindFunc
	KindVoid
	KindInt
	KindFloat
	KindNewtype
	KindStruct
	KindUnion
	KindBool
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindPtr:     "pointer",
	KindFunc:    "function",
	KindVoid:    "void",
	KindInt:     "integer",
	KindFloat:   "float",
	KindNewtype: "newtype",
	KindStruct:  "struct",
	KindUnion:   "union",
	KindBool:    "bool",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// KindOf returns the coarse kind of t, or KindInvalid for nil.
func KindOf(t Type) Kind {
	if t == nil {
		return KindInvalid
	}
	return t.Kind()
}

// IsKind reports whether t has one of the given coarse kinds.
func IsKind(t Type, kinds ...Kind) bool {
	k := KindOf(t)
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
