package loader

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/silversquirl/elide-c/internal/diagnostics"
)

// fields is a YAML mapping with its keys in document order.
type fields struct {
	node   *yaml.Node
	keys   []string
	keyPos map[string]*yaml.Node
	values map[string]*yaml.Node
}

func mapping(n *yaml.Node, what string) (*fields, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, errorAt(diagnostics.ErrLoadSyntax, n, "%s must be a mapping", what)
	}
	f := &fields{
		node:   n,
		keyPos: make(map[string]*yaml.Node, len(n.Content)/2),
		values: make(map[string]*yaml.Node, len(n.Content)/2),
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		key := strings.TrimSpace(k.Value)
		if _, dup := f.values[key]; dup {
			return nil, errorAt(diagnostics.ErrLoadSyntax, k, "duplicate key %q in %s", key, what)
		}
		f.keys = append(f.keys, key)
		f.keyPos[key] = k
		f.values[key] = v
	}
	return f, nil
}

func (f *fields) get(key string) *yaml.Node {
	v := f.values[key]
	if v != nil && v.Kind == yaml.ScalarNode && v.Tag == "!!null" {
		return nil
	}
	return v
}

func (f *fields) keyNode(key string) *yaml.Node { return f.keyPos[key] }

func (f *fields) require(key string) (*yaml.Node, error) {
	if v := f.get(key); v != nil {
		return v, nil
	}
	return nil, errorAt(diagnostics.ErrLoadMissing, f.node, "missing %q", key)
}

func (f *fields) requireString(key string) (string, error) {
	v, err := f.require(key)
	if err != nil {
		return "", err
	}
	return scalar(v, key)
}

func (f *fields) flag(key string) (bool, error) {
	v := f.get(key)
	if v == nil {
		return false, nil
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return false, errorAt(diagnostics.ErrLoadSyntax, v, "%s must be true or false", key)
	}
	return b, nil
}

// allow rejects keys outside the given set.
func (f *fields) allow(keys ...string) error {
	for _, k := range f.keys {
		known := false
		for _, a := range keys {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return errorAt(diagnostics.ErrLoadUnknown, f.keyPos[k], "unknown key %q", k)
		}
	}
	return nil
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", errorAt(diagnostics.ErrLoadSyntax, n, "%s must be a scalar", what)
	}
	return n.Value, nil
}

func sequence(n *yaml.Node, what string) ([]*yaml.Node, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(diagnostics.ErrLoadSyntax, n, "%s must be a list", what)
	}
	return n.Content, nil
}

func parseUint(n *yaml.Node, bits int) (uint64, error) {
	v, err := strconv.ParseUint(n.Value, 0, bits)
	if err != nil {
		return 0, errorAt(diagnostics.ErrLoadSyntax, n, "invalid unsigned %d-bit integer %q", bits, n.Value)
	}
	return v, nil
}

func parseInt(n *yaml.Node, bits int) (uint64, error) {
	v, err := strconv.ParseInt(n.Value, 0, bits)
	if err != nil {
		return 0, errorAt(diagnostics.ErrLoadSyntax, n, "invalid signed %d-bit integer %q", bits, n.Value)
	}
	return uint64(v), nil
}
