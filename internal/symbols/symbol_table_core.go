package symbols

import (
	"github.com/silversquirl/elide-c/internal/typesystem"
)

type SymbolKind int

const (
	ParameterSymbol SymbolKind = iota // Declared parameter of the current function
	LocalSymbol                       // Introduced by let
	GlobalSymbol                      // Top-level storage declaration
	FunctionSymbol                    // Top-level function
)

func (k SymbolKind) String() string {
	switch k {
	case ParameterSymbol:
		return "parameter"
	case LocalSymbol:
		return "local"
	case GlobalSymbol:
		return "global"
	case FunctionSymbol:
		return "function"
	default:
		return "unknown"
	}
}

// Symbol is a named storage location visible to identifiers.
type Symbol struct {
	Name string
	Type typesystem.RefType
	Kind SymbolKind
}

// Binding is a (name, reference type) pair as declared by a parameter list
// or a let expression.
type Binding struct {
	Name string
	Type typesystem.RefType
}
