package loader

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

type exprParser func(n *yaml.Node, m *fields) (ast.Expression, error)

var exprParsers map[string]exprParser

func init() {
	exprParsers = map[string]exprParser{
		"binop":     parseBinary,
		"unop":      parseUnary,
		"call":      parseCall,
		"if":        parseIf,
		"while":     parseWhile,
		"break":     parseBreak,
		"continue":  parseContinue,
		"return":    parseReturn,
		"func":      parseFunc,
		"int":       parseIntLiteral,
		"float":     parseFloatLiteral,
		"bool":      parseBoolLiteral,
		"array":     parseArray,
		"composite": parseComposite,
		"field":     parseField,
		"let":       parseLet,
		"cast":      parseCast,
		"ident":     parseIdent,
	}
}

// parseExpression decodes a {kind: ...} mapping. A bare scalar is an
// identifier.
func parseExpression(n *yaml.Node) (ast.Expression, error) {
	if n == nil {
		return nil, errorAt(diagnostics.ErrLoadMissing, n, "missing expression")
	}
	if n.Kind == yaml.ScalarNode {
		return &ast.Identifier{Token: tokenOf(n, ""), Value: n.Value}, nil
	}
	m, err := mapping(n, "expression")
	if err != nil {
		return nil, err
	}
	kind, err := m.requireString("kind")
	if err != nil {
		return nil, err
	}
	parse, ok := exprParsers[kind]
	if !ok {
		return nil, errorAt(diagnostics.ErrLoadUnknown, m.get("kind"), "unknown expression kind %q", kind)
	}
	return parse(n, m)
}

func child(m *fields, key string) (ast.Expression, error) {
	v, err := m.require(key)
	if err != nil {
		return nil, err
	}
	return parseExpression(v)
}

func optionalChild(m *fields, key string) (ast.Expression, error) {
	v := m.get(key)
	if v == nil {
		return nil, nil
	}
	return parseExpression(v)
}

func list(m *fields, key string) ([]ast.Expression, error) {
	items, err := sequence(m.get(key), key)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		e, err := parseExpression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parseBinary(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "op", "left", "right"); err != nil {
		return nil, err
	}
	name, err := m.requireString("op")
	if err != nil {
		return nil, err
	}
	op, ok := ast.LookupBinaryOperator(name)
	if !ok {
		return nil, errorAt(diagnostics.ErrLoadUnknown, m.get("op"), "unknown binary operator %q", name)
	}
	left, err := child(m, "left")
	if err != nil {
		return nil, err
	}
	right, err := child(m, "right")
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tokenOf(n, op.String()), Operator: op, Left: left, Right: right}, nil
}

func parseUnary(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "op", "operand"); err != nil {
		return nil, err
	}
	name, err := m.requireString("op")
	if err != nil {
		return nil, err
	}
	op, ok := ast.LookupUnaryOperator(name)
	if !ok {
		return nil, errorAt(diagnostics.ErrLoadUnknown, m.get("op"), "unknown unary operator %q", name)
	}
	operand, err := child(m, "operand")
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Token: tokenOf(n, op.String()), Operator: op, Operand: operand}, nil
}

func parseCall(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "func", "args"); err != nil {
		return nil, err
	}
	callee, err := child(m, "func")
	if err != nil {
		return nil, err
	}
	args, err := list(m, "args")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{Token: tokenOf(n, "("), Function: callee, Arguments: args}, nil
}

func parseIf(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "cond", "then", "else"); err != nil {
		return nil, err
	}
	cond, err := child(m, "cond")
	if err != nil {
		return nil, err
	}
	then, err := child(m, "then")
	if err != nil {
		return nil, err
	}
	els, err := optionalChild(m, "else")
	if err != nil {
		return nil, err
	}
	return &ast.IfExpression{Token: tokenOf(n, "if"), Condition: cond, Consequence: then, Alternative: els}, nil
}

func parseWhile(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "cond", "body"); err != nil {
		return nil, err
	}
	cond, err := child(m, "cond")
	if err != nil {
		return nil, err
	}
	body, err := child(m, "body")
	if err != nil {
		return nil, err
	}
	return &ast.WhileExpression{Token: tokenOf(n, "while"), Condition: cond, Body: body}, nil
}

func label(m *fields) (string, error) {
	if err := m.allow("kind", "label"); err != nil {
		return "", err
	}
	v := m.get("label")
	if v == nil {
		return "", nil
	}
	return scalar(v, "label")
}

func parseBreak(n *yaml.Node, m *fields) (ast.Expression, error) {
	l, err := label(m)
	if err != nil {
		return nil, err
	}
	return &ast.BreakExpression{Token: tokenOf(n, "break"), Label: l}, nil
}

func parseContinue(n *yaml.Node, m *fields) (ast.Expression, error) {
	l, err := label(m)
	if err != nil {
		return nil, err
	}
	return &ast.ContinueExpression{Token: tokenOf(n, "continue"), Label: l}, nil
}

func parseReturn(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "value"); err != nil {
		return nil, err
	}
	v, err := optionalChild(m, "value")
	if err != nil {
		return nil, err
	}
	return &ast.ReturnExpression{Token: tokenOf(n, "return"), Value: v}, nil
}

func parseFunc(n *yaml.Node, m *fields) (ast.Expression, error) {
	lit, err := parseFunctionLiteral(n, m, "kind")
	if err != nil {
		return nil, err
	}
	return lit, nil
}

// parseFunctionLiteral reads params, ret and body from m. extra names keys
// owned by the caller.
func parseFunctionLiteral(n *yaml.Node, m *fields, extra ...string) (*ast.FunctionLiteral, error) {
	if err := m.allow(append([]string{"params", "ret", "body"}, extra...)...); err != nil {
		return nil, err
	}
	items, err := sequence(m.get("params"), "params")
	if err != nil {
		return nil, err
	}
	lit := &ast.FunctionLiteral{Token: tokenOf(n, "fn"), ReturnType: ts.Void}
	for _, item := range items {
		pm, err := mapping(item, "parameter")
		if err != nil {
			return nil, err
		}
		if err := pm.allow("name", "type", "mut", "vol"); err != nil {
			return nil, err
		}
		name, err := pm.requireString("name")
		if err != nil {
			return nil, err
		}
		typ, err := refTypeFields(pm, "type")
		if err != nil {
			return nil, err
		}
		lit.Parameters = append(lit.Parameters, &ast.Parameter{Token: tokenOf(item, name), Name: name, Type: typ})
	}
	if r := m.get("ret"); r != nil {
		if lit.ReturnType, err = parseType(r); err != nil {
			return nil, err
		}
	}
	if lit.Body, err = child(m, "body"); err != nil {
		return nil, err
	}
	return lit, nil
}

func parseIntLiteral(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "type", "value"); err != nil {
		return nil, err
	}
	kind := ts.I32
	if tn := m.get("type"); tn != nil {
		t, err := parseType(tn)
		if err != nil {
			return nil, err
		}
		it, ok := t.(ts.TInt)
		if !ok {
			return nil, errorAt(diagnostics.ErrLoadSyntax, tn, "integer literal needs an integer type, got %s", t)
		}
		kind = it
	}
	vn, err := m.require("value")
	if err != nil {
		return nil, err
	}
	var v uint64
	if kind.Signed {
		v, err = parseInt(vn, int(kind.Width))
	} else {
		v, err = parseUint(vn, int(kind.Width))
	}
	if err != nil {
		return nil, err
	}
	return &ast.IntegerLiteral{Token: tokenOf(vn, ""), Kind: kind, Value: v}, nil
}

func parseFloatLiteral(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "type", "value"); err != nil {
		return nil, err
	}
	kind := ts.Float64
	if tn := m.get("type"); tn != nil {
		t, err := parseType(tn)
		if err != nil {
			return nil, err
		}
		ft, ok := t.(ts.TFloat)
		if !ok {
			return nil, errorAt(diagnostics.ErrLoadSyntax, tn, "float literal needs a float type, got %s", t)
		}
		kind = ft
	}
	vn, err := m.require("value")
	if err != nil {
		return nil, err
	}
	bits := 64
	if kind.Precision == ts.F32 {
		bits = 32
	}
	v, err := strconv.ParseFloat(vn.Value, bits)
	if err != nil {
		return nil, errorAt(diagnostics.ErrLoadSyntax, vn, "invalid float %q", vn.Value)
	}
	return &ast.FloatLiteral{Token: tokenOf(vn, ""), Kind: kind, Value: v}, nil
}

func parseBoolLiteral(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "value"); err != nil {
		return nil, err
	}
	vn, err := m.require("value")
	if err != nil {
		return nil, err
	}
	v, err := m.flag("value")
	if err != nil {
		return nil, err
	}
	return &ast.BoolLiteral{Token: tokenOf(vn, ""), Value: v}, nil
}

func optionalType(m *fields) (ts.Type, error) {
	tn := m.get("type")
	if tn == nil {
		return nil, nil
	}
	return parseType(tn)
}

func parseArray(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "type", "elements"); err != nil {
		return nil, err
	}
	declared, err := optionalType(m)
	if err != nil {
		return nil, err
	}
	elems, err := list(m, "elements")
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Token: tokenOf(n, "["), Declared: declared, Elements: elems}, nil
}

func parseComposite(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "type", "values"); err != nil {
		return nil, err
	}
	declared, err := optionalType(m)
	if err != nil {
		return nil, err
	}
	values, err := list(m, "values")
	if err != nil {
		return nil, err
	}
	return &ast.CompositeLiteral{Token: tokenOf(n, "{"), Declared: declared, Values: values}, nil
}

func parseField(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "of", "name"); err != nil {
		return nil, err
	}
	agg, err := child(m, "of")
	if err != nil {
		return nil, err
	}
	name, err := m.requireString("name")
	if err != nil {
		return nil, err
	}
	return &ast.FieldAccess{Token: tokenOf(n, "."+name), Aggregate: agg, Field: name}, nil
}

func parseLet(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "name", "type", "mut", "vol", "value", "body", "defer"); err != nil {
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
	value, err := child(m, "value")
	if err != nil {
		return nil, err
	}
	body, err := child(m, "body")
	if err != nil {
		return nil, err
	}
	deferred, err := optionalChild(m, "defer")
	if err != nil {
		return nil, err
	}
	return &ast.LetExpression{
		Token:    tokenOf(n, "let"),
		Name:     name,
		Binding:  binding,
		Value:    value,
		Body:     body,
		Deferred: deferred,
	}, nil
}

func parseCast(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "to", "value"); err != nil {
		return nil, err
	}
	tn, err := m.require("to")
	if err != nil {
		return nil, err
	}
	target, err := parseType(tn)
	if err != nil {
		return nil, err
	}
	value, err := child(m, "value")
	if err != nil {
		return nil, err
	}
	return &ast.CastExpression{Token: tokenOf(n, "as"), Target: target, Value: value}, nil
}

func parseIdent(n *yaml.Node, m *fields) (ast.Expression, error) {
	if err := m.allow("kind", "name"); err != nil {
		return nil, err
	}
	name, err := m.requireString("name")
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Token: tokenOf(n, name), Value: name}, nil
}
