package loader

import (
	"gopkg.in/yaml.v3"

	"github.com/silversquirl/elide-c/internal/config"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	ts "github.com/silversquirl/elide-c/internal/typesystem"
)

var scalarTypes = map[string]ts.Type{
	config.VoidTypeName: ts.Void,
	config.BoolTypeName: ts.Bool,
	"i8":                ts.I8,
	"i16":               ts.I16,
	"i32":               ts.I32,
	"i64":               ts.I64,
	"u8":                ts.U8,
	"u16":               ts.U16,
	"u32":               ts.U32,
	"u64":               ts.U64,
	"f32":               ts.Float32,
	"f64":               ts.Float64,
	"f80":               ts.Float80,
}

// parseType decodes a value type: a scalar name or a single-key mapping
// ({ptr: ...}, {func: ...}, {newtype: N}, {struct: [...]}, {union: [...]}).
func parseType(n *yaml.Node) (ts.Type, error) {
	if n == nil {
		return nil, errorAt(diagnostics.ErrLoadMissing, n, "missing type")
	}
	if n.Kind == yaml.ScalarNode {
		t, ok := scalarTypes[n.Value]
		if !ok {
			return nil, errorAt(diagnostics.ErrLoadUnknown, n, "unknown type %q", n.Value)
		}
		return t, nil
	}

	m, err := mapping(n, "type")
	if err != nil {
		return nil, err
	}
	if len(m.keys) != 1 {
		return nil, errorAt(diagnostics.ErrLoadSyntax, n, "type mapping must have exactly one key")
	}
	key := m.keys[0]
	body := m.get(key)

	switch key {
	case "ptr":
		pm, err := mapping(body, "ptr")
		if err != nil {
			return nil, err
		}
		if err := pm.allow("to", "mut", "vol"); err != nil {
			return nil, err
		}
		to, err := refTypeFields(pm, "to")
		if err != nil {
			return nil, err
		}
		return ts.TPtr{To: to}, nil

	case "func":
		fm, err := mapping(body, "func")
		if err != nil {
			return nil, err
		}
		if err := fm.allow("params", "ret"); err != nil {
			return nil, err
		}
		items, err := sequence(fm.get("params"), "params")
		if err != nil {
			return nil, err
		}
		fn := ts.TFunc{Params: make([]ts.RefType, 0, len(items)), Return: ts.Void}
		for _, item := range items {
			r, err := parseRefType(item)
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, r)
		}
		if r := fm.get("ret"); r != nil {
			if fn.Return, err = parseType(r); err != nil {
				return nil, err
			}
		}
		return fn, nil

	case "newtype":
		name, err := scalar(body, "newtype")
		if err != nil {
			return nil, err
		}
		return ts.TNewtype{Name: name}, nil

	case "struct":
		fs, err := parseFields(body, "struct")
		if err != nil {
			return nil, err
		}
		return ts.TStruct{Fields: fs}, nil

	case "union":
		fs, err := parseFields(body, "union")
		if err != nil {
			return nil, err
		}
		return ts.TUnion{Fields: fs}, nil

	default:
		return nil, errorAt(diagnostics.ErrLoadUnknown, m.keyNode(key), "unknown type constructor %q", key)
	}
}

// parseRefType decodes a scalar type (immutable, non-volatile) or a
// {type, mut, vol} mapping.
func parseRefType(n *yaml.Node) (ts.RefType, error) {
	if n != nil && n.Kind == yaml.MappingNode {
		m, err := mapping(n, "reference type")
		if err != nil {
			return ts.RefType{}, err
		}
		if m.get("type") != nil {
			if err := m.allow("type", "mut", "vol"); err != nil {
				return ts.RefType{}, err
			}
			return refTypeFields(m, "type")
		}
	}
	t, err := parseType(n)
	if err != nil {
		return ts.RefType{}, err
	}
	return ts.Const(t), nil
}

// refTypeFields reads the type under key plus the mut and vol flags of m.
func refTypeFields(m *fields, key string) (ts.RefType, error) {
	tn, err := m.require(key)
	if err != nil {
		return ts.RefType{}, err
	}
	t, err := parseType(tn)
	if err != nil {
		return ts.RefType{}, err
	}
	mut, err := m.flag("mut")
	if err != nil {
		return ts.RefType{}, err
	}
	vol, err := m.flag("vol")
	if err != nil {
		return ts.RefType{}, err
	}
	return ts.RefType{Type: t, Mutable: mut, Volatile: vol}, nil
}

func parseFields(n *yaml.Node, what string) ([]ts.Field, error) {
	items, err := sequence(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]ts.Field, 0, len(items))
	for _, item := range items {
		m, err := mapping(item, what+" field")
		if err != nil {
			return nil, err
		}
		if err := m.allow("name", "type"); err != nil {
			return nil, err
		}
		name, err := m.requireString("name")
		if err != nil {
			return nil, err
		}
		tn, err := m.require("type")
		if err != nil {
			return nil, err
		}
		t, err := parseType(tn)
		if err != nil {
			return nil, err
		}
		out = append(out, ts.Field{Name: name, Type: t})
	}
	return out, nil
}
