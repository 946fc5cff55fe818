// Package loader reads expression trees from YAML documents. It stands in
// for the parser: every node keeps the line and column of the YAML node it
// came from.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/token"
)

// Load reads and parses the unit stored at path.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes one unit document. file names the unit when the document
// does not carry a file key.
func Parse(data []byte, file string) (*ast.Program, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, diagnostics.Errorf(diagnostics.ErrLoadMissing, token.Token{}, "%s is empty", file)
		}
		return nil, diagnostics.Errorf(diagnostics.ErrLoadSyntax, token.Token{}, "%s: %v", file, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	m, err := mapping(root, "unit")
	if err != nil {
		return nil, err
	}
	if err := m.allow("file", "declarations"); err != nil {
		return nil, err
	}

	prog := &ast.Program{File: file}
	if n := m.get("file"); n != nil {
		if prog.File, err = scalar(n, "file"); err != nil {
			return nil, err
		}
	}
	decls, err := m.require("declarations")
	if err != nil {
		return nil, err
	}
	if prog.Declarations, err = parseDeclarations(decls); err != nil {
		return nil, err
	}
	return prog, nil
}

func parseDeclarations(n *yaml.Node) ([]ast.Declaration, error) {
	items, err := sequence(n, "declarations")
	if err != nil {
		return nil, err
	}
	decls := make([]ast.Declaration, 0, len(items))
	for _, item := range items {
		decl, err := parseDeclaration(item)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func parseDeclaration(n *yaml.Node) (ast.Declaration, error) {
	m, err := mapping(n, "declaration")
	if err != nil {
		return nil, err
	}
	if len(m.keys) != 1 {
		return nil, errorAt(diagnostics.ErrLoadSyntax, n, "declaration must have exactly one of func, global, namespace")
	}

	key := m.keys[0]
	body := m.get(key)
	switch key {
	case "func":
		return parseFunctionDeclaration(body)
	case "global":
		return parseGlobalDeclaration(body)
	case "namespace":
		return parseNamespace(body)
	default:
		return nil, errorAt(diagnostics.ErrLoadUnknown, m.keyNode(key), "unknown declaration %q", key)
	}
}

func parseFunctionDeclaration(n *yaml.Node) (ast.Declaration, error) {
	m, err := mapping(n, "func")
	if err != nil {
		return nil, err
	}
	name, err := m.requireString("name")
	if err != nil {
		return nil, err
	}
	lit, err := parseFunctionLiteral(n, m, "name")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Token: tokenOf(n, name), Name: name, Function: lit}, nil
}

func parseGlobalDeclaration(n *yaml.Node) (ast.Declaration, error) {
	m, err := mapping(n, "global")
	if err != nil {
		return nil, err
	}
	if err := m.allow("name", "type", "mut", "vol", "value"); err != nil {
		return nil, err
	}
	name, err := m.requireString("name")
	if err != nil {
		return nil, err
	}
	binding, err := refTypeFields(m, "type")
	if err != nil {
		return nil, err
	}
	decl := &ast.GlobalDeclaration{Token: tokenOf(n, name), Name: name, Binding: binding}
	if v := m.get("value"); v != nil {
		if decl.Value, err = parseExpression(v); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

func parseNamespace(n *yaml.Node) (ast.Declaration, error) {
	m, err := mapping(n, "namespace")
	if err != nil {
		return nil, err
	}
	if err := m.allow("name", "declarations"); err != nil {
		return nil, err
	}
	name, err := m.requireString("name")
	if err != nil {
		return nil, err
	}
	ns := &ast.Namespace{Token: tokenOf(n, name), Name: name}
	if d := m.get("declarations"); d != nil {
		if ns.Declarations, err = parseDeclarations(d); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func errorAt(code diagnostics.ErrorCode, n *yaml.Node, format string, args ...any) *diagnostics.DiagnosticError {
	return diagnostics.Errorf(code, tokenOf(n, ""), format, args...)
}

// tokenOf records the position of n. Scalars use their text as lexeme.
func tokenOf(n *yaml.Node, lexeme string) token.Token {
	if n == nil {
		return token.Token{Lexeme: lexeme}
	}
	if lexeme == "" && n.Kind == yaml.ScalarNode {
		lexeme = n.Value
	}
	return token.Token{Lexeme: lexeme, Line: n.Line, Column: n.Column}
}
