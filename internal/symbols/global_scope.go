package symbols

import (
	"strings"
)

// NamespaceSeparator joins namespace segments in qualified names.
const NamespaceSeparator = "::"

// Qualify joins a namespace path and a name.
func Qualify(ns []string, name string) string {
	if len(ns) == 0 {
		return name
	}
	return strings.Join(ns, NamespaceSeparator) + NamespaceSeparator + name
}

// GlobalScope holds the top-level names of one compilation unit, keyed by
// their fully qualified name.
type GlobalScope struct {
	store map[string]Symbol
	order []string
}

func NewGlobalScope() *GlobalScope {
	return &GlobalScope{store: make(map[string]Symbol)}
}

// Declare registers sym under its qualified name. It reports false if the
// name is already taken.
func (g *GlobalScope) Declare(sym Symbol) bool {
	if _, exists := g.store[sym.Name]; exists {
		return false
	}
	g.store[sym.Name] = sym
	g.order = append(g.order, sym.Name)
	return true
}

// Lookup resolves name as written inside namespace path ns: the innermost
// enclosing namespace is tried first, the root last.
func (g *GlobalScope) Lookup(name string, ns ...string) (Symbol, bool) {
	for i := len(ns); i >= 0; i-- {
		if sym, ok := g.store[Qualify(ns[:i], name)]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// All returns every global symbol in declaration order.
func (g *GlobalScope) All() []Symbol {
	out := make([]Symbol, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.store[name])
	}
	return out
}

// Len returns the number of declared globals.
func (g *GlobalScope) Len() int { return len(g.order) }
