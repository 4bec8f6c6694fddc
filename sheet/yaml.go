package sheet

import (
	"fmt"

	"github.com/npillmayer/sheets"
	"gopkg.in/yaml.v3"
)

// Named is a sheet together with its name.
type Named struct {
	Name string
	Spec *Spec
}

// ParseYAML reads a single sheet from a YAML document. The shape of the
// sheet is determined by probing the depth of the document (see Depth).
//
//     .box:              # flat sheet
//       color: red
//
//     sm:                # partitioned sheet
//       .box:
//         color: red
//
func ParseYAML(data []byte) (*Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return FromYAMLNode(&doc)
}

// ParseYAMLSheets reads a YAML document mapping sheet names to sheets.
// Sheets are returned in document order.
func ParseYAMLSheets(data []byte) ([]Named, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	root := resolve(&doc)
	if root == nil || len(root.Content) == 0 {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of sheet names to sheets", root.Line)
	}
	var named []Named
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if seen[name] {
			return nil, fmt.Errorf("line %d: sheet %q defined more than once", root.Content[i].Line, name)
		}
		seen[name] = true
		spec, err := FromYAMLNode(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		named = append(named, Named{Name: name, Spec: spec})
	}
	tracer().Debugf("read %d sheet(s) from YAML", len(named))
	return named, nil
}

// FromYAMLNode converts a YAML node into a sheet.
func FromYAMLNode(n *yaml.Node) (*Spec, error) {
	root := resolve(n)
	depth := Depth(root)
	tracer().Debugf("probed sheet depth = %d", depth)
	switch depth {
	case 2:
		layout, err := layoutFromNode(root, 2)
		if err != nil {
			return nil, err
		}
		return NewFlat(layout)
	case 3:
		var parts []Partition
		err := eachPair(root, 3, func(cond string, val *yaml.Node) error {
			if val.Kind != yaml.MappingNode {
				return sheets.Malformed(3, "line %d: condition %q does not map selectors", val.Line, cond)
			}
			if d := Depth(val); d != 2 && d != 0 {
				return sheets.Malformed(3, "line %d: partition %q has depth %d, expected 2", val.Line, cond, d)
			}
			layout, err := layoutFromNode(val, 3)
			if err != nil {
				return err
			}
			parts = append(parts, Partition{Condition: cond, Layout: layout})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return NewPartitioned(parts...)
	}
	return nil, sheets.Malformed(depth, "")
}

// Depth probes the depth of a YAML node by descending into the first key of
// every mapping. Sequences and scalars terminate the descent, as do empty
// mappings.
func Depth(n *yaml.Node) int {
	depth := 0
	for n = resolve(n); n != nil && n.Kind == yaml.MappingNode && len(n.Content) >= 2; n = resolve(n.Content[1]) {
		depth++
	}
	return depth
}

// layoutFromNode converts a mapping selector -> field -> payload.
func layoutFromNode(n *yaml.Node, depth int) (Layout, error) {
	var layout Layout
	err := eachPair(n, depth, func(selector string, val *yaml.Node) error {
		if val.Kind != yaml.MappingNode {
			return sheets.Malformed(depth, "line %d: selector %q does not map fields", val.Line, selector)
		}
		rule := Rule{Selector: selector}
		err := eachPair(val, depth, func(field string, p *yaml.Node) error {
			var payload interface{}
			if err := p.Decode(&payload); err != nil {
				return fmt.Errorf("line %d: payload of field %q: %w", p.Line, field, err)
			}
			rule.Fields = append(rule.Fields, Field{Name: field, Payload: payload})
			return nil
		})
		if err != nil {
			return err
		}
		layout = append(layout, rule)
		return nil
	})
	return layout, err
}

// eachPair iterates over the key/value pairs of a mapping, rejecting
// duplicate keys.
func eachPair(n *yaml.Node, depth int, f func(key string, val *yaml.Node) error) error {
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return sheets.Malformed(depth, "line %d: keys must be scalars", key.Line)
		}
		if seen[key.Value] {
			return sheets.Malformed(depth, "line %d: duplicate key %q", key.Line, key.Value)
		}
		seen[key.Value] = true
		if err := f(key.Value, resolve(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// resolve skips document nodes and follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}
