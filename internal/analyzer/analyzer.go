package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/config"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/symbols"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// Annotator assigns a type to every node of an expression tree and
// classifies each node as a value or a reference.
//
// An Annotator owns its context stack and is meant for one compilation
// unit. Independent units get independent Annotators and may run on
// separate goroutines.
type Annotator struct {
	stack     *symbols.ContextStack
	globals   *symbols.GlobalScope
	namespace []string
	maxDepth  int
	depth     int
}

// New creates an Annotator. A nil config uses config.Default().
func New(cfg *config.Config) *Annotator {
	if cfg == nil {
		cfg = config.Default()
	}
	globals := symbols.NewGlobalScope()
	return &Annotator{
		stack:    symbols.NewContextStack(globals),
		globals:  globals,
		maxDepth: cfg.MaxDepth,
	}
}

// Globals returns the top-level names declared so far.
func (a *Annotator) Globals() *symbols.GlobalScope { return a.globals }

// AnnotateFunction annotates a function literal and everything beneath it.
// The first error aborts the pass.
func (a *Annotator) AnnotateFunction(ctx context.Context, fn *ast.FunctionLiteral) error {
	if fn == nil {
		return diagnostics.NewError(diagnostics.ErrMalformedNode, noToken, "missing function literal")
	}
	_, err := a.visit(ctx, fn)
	return err
}

// Annotate annotates a single expression in the current scope and returns
// its classification.
func (a *Annotator) Annotate(ctx context.Context, e ast.Expression) (typesystem.Class, error) {
	if e == nil {
		return typesystem.Value(), diagnostics.NewError(diagnostics.ErrMalformedNode, noToken, "missing expression")
	}
	return a.visit(ctx, e)
}

// AnnotateProgram declares every top-level name of prog, then annotates
// every function body and global initializer in source order.
func (a *Annotator) AnnotateProgram(ctx context.Context, prog *ast.Program) error {
	if prog == nil {
		return diagnostics.NewError(diagnostics.ErrMalformedNode, noToken, "missing program")
	}
	if err := a.declare(prog.Declarations, nil); err != nil {
		return err
	}
	return a.annotateDeclarations(ctx, prog.Declarations)
}

// declare registers the headers of decls so bodies can refer to any
// top-level name regardless of order.
func (a *Annotator) declare(decls []ast.Declaration, ns []string) error {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			if d.Function == nil {
				return nodeError(diagnostics.ErrMalformedNode, d, "function %s has no body", d.Name)
			}
			if err := checkParameters(d.Function); err != nil {
				return err
			}
			sym := symbols.Symbol{
				Name: symbols.Qualify(ns, d.Name),
				Type: typesystem.Const(d.Function.Signature()),
				Kind: symbols.FunctionSymbol,
			}
			if !a.globals.Declare(sym) {
				return nodeError(diagnostics.ErrRedeclared, d, "%s is declared more than once", sym.Name)
			}

		case *ast.GlobalDeclaration:
			if d.Binding.Type == nil {
				return nodeError(diagnostics.ErrMalformedNode, d, "global %s has no type", d.Name)
			}
			sym := symbols.Symbol{
				Name: symbols.Qualify(ns, d.Name),
				Type: d.Binding,
				Kind: symbols.GlobalSymbol,
			}
			if !a.globals.Declare(sym) {
				return nodeError(diagnostics.ErrRedeclared, d, "%s is declared more than once", sym.Name)
			}

		case *ast.Namespace:
			inner := append(append([]string(nil), ns...), d.Name)
			if err := a.declare(d.Declarations, inner); err != nil {
				return err
			}

		default:
			return diagnostics.Errorf(diagnostics.ErrMalformedNode, noToken, "unknown declaration %T", decl)
		}
	}
	return nil
}

func (a *Annotator) annotateDeclarations(ctx context.Context, decls []ast.Declaration) error {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			if err := a.AnnotateFunction(ctx, d.Function); err != nil {
				return err
			}

		case *ast.GlobalDeclaration:
			if d.Value == nil {
				continue
			}
			if _, err := a.visit(ctx, d.Value); err != nil {
				return err
			}
			if !typesystem.TypesEqual(d.Binding.Type, d.Value.Type()) {
				return nodeError(diagnostics.ErrTypeMismatch, d, "initializer of %s has the wrong type", d.Name).
					WithTypes(d.Binding.Type, d.Value.Type())
			}

		case *ast.Namespace:
			a.namespace = append(a.namespace, d.Name)
			err := a.annotateDeclarations(ctx, d.Declarations)
			a.namespace = a.namespace[:len(a.namespace)-1]
			if err != nil {
				return err
			}
		}
	}
	return nil
}
