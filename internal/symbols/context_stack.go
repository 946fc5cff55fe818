package symbols

import (
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// FunctionContext is the record for one function literal being annotated:
// its declared parameters, its return type and the stack of let bindings
// currently in scope inside it.
type FunctionContext struct {
	Params []Binding
	Return typesystem.Type
	locals []Binding
}

// Depth returns the number of let bindings currently in scope.
func (f *FunctionContext) Depth() int { return len(f.locals) }

// ContextStack is the pass-local symbol table: a stack of function
// contexts over an optional global scope. One stack belongs to one
// annotation run and must not be shared between goroutines.
type ContextStack struct {
	funcs   []*FunctionContext
	globals *GlobalScope
}

// NewContextStack creates an empty stack resolving unknown names in
// globals, which may be nil.
func NewContextStack(globals *GlobalScope) *ContextStack {
	return &ContextStack{globals: globals}
}

// Globals returns the global scope backing the stack.
func (s *ContextStack) Globals() *GlobalScope { return s.globals }

// EnterFunction pushes a new function context. Every call must be paired
// with ExitFunction.
func (s *ContextStack) EnterFunction(params []Binding, ret typesystem.Type) *FunctionContext {
	fc := &FunctionContext{Params: params, Return: ret}
	s.funcs = append(s.funcs, fc)
	return fc
}

// ExitFunction pops the current function context.
func (s *ContextStack) ExitFunction() {
	if len(s.funcs) == 0 {
		panic("symbols: ExitFunction without matching EnterFunction")
	}
	s.funcs[len(s.funcs)-1] = nil
	s.funcs = s.funcs[:len(s.funcs)-1]
}

// Current returns the innermost function context, or nil outside any
// function.
func (s *ContextStack) Current() *FunctionContext {
	if len(s.funcs) == 0 {
		return nil
	}
	return s.funcs[len(s.funcs)-1]
}

// FunctionDepth returns the number of nested function contexts.
func (s *ContextStack) FunctionDepth() int { return len(s.funcs) }

// EnterScope pushes a let binding onto the current function context.
// It reports false when there is no current function.
func (s *ContextStack) EnterScope(name string, typ typesystem.RefType) bool {
	fc := s.Current()
	if fc == nil {
		return false
	}
	fc.locals = append(fc.locals, Binding{Name: name, Type: typ})
	return true
}

// ExitScope pops the innermost let binding of the current function context.
func (s *ContextStack) ExitScope() {
	fc := s.Current()
	if fc == nil || len(fc.locals) == 0 {
		panic("symbols: ExitScope without matching EnterScope")
	}
	fc.locals = fc.locals[:len(fc.locals)-1]
}

// Resolve looks name up in the current function's parameters (first match
// wins), then in its let bindings innermost-first, and finally in the
// global scope as seen from namespace path ns.
func (s *ContextStack) Resolve(name string, ns ...string) (Symbol, bool) {
	if fc := s.Current(); fc != nil {
		for _, p := range fc.Params {
			if p.Name == name {
				return Symbol{Name: name, Type: p.Type, Kind: ParameterSymbol}, true
			}
		}
		for i := len(fc.locals) - 1; i >= 0; i-- {
			if fc.locals[i].Name == name {
				return Symbol{Name: name, Type: fc.locals[i].Type, Kind: LocalSymbol}, true
			}
		}
	}

	if s.globals != nil {
		return s.globals.Lookup(name, ns...)
	}
	return Symbol{}, false
}
