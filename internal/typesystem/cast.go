package typesystem

// Castable reports whether a value of type from may be reinterpreted as to.
//
// Only the coarse kind is gated here: any pointer converts to any pointer and
// any integer to any integer regardless of width, signedness or qualifiers.
// Newtypes are never unwrapped, so a cast into or out of a newtype only
// succeeds as an identity cast.
func Castable(from, to Type) bool {
	if from == nil || to == nil {
		return false
	}

	// A void expression has no value to reinterpret.
	if from.Kind() == KindVoid {
		return false
	}

	if TypesEqual(from, to) {
		return true
	}

	switch to.Kind() {
	case KindVoid:
		return true

	case KindPtr, KindInt, KindFloat:
		return from.Kind() == to.Kind()

	case KindBool:
		return from.Kind() == KindInt || from.Kind() == KindFloat

	default:
		return false
	}
}
