package expr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML document into an expression tree. Mappings
// become property lists in document order. A sequence of mappings is
// concatenated into a single property list, which allows repeated keys:
//
//	- bars: {data-x: [1, 2], data-y: [3, 4]}
//	- bars: {data-x: [1, 2], data-y: [5, 6]}
//
// Other sequences become lists and scalars become values.
func FromYAML(b []byte) (*Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return List(), nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return List(), nil
		}
		root = doc.Content[0]
	}
	return fromNode(root)
}

func fromNode(n *yaml.Node) (*Expr, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Value(n.Value), nil

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.MappingNode:
		l := List()
		if err := appendMapping(l, n); err != nil {
			return nil, err
		}
		return l, nil

	case yaml.SequenceNode:
		l := List()
		if isPropertySequence(n) {
			for _, item := range n.Content {
				if err := appendMapping(l, item); err != nil {
					return nil, err
				}
			}
			return l, nil
		}
		for _, item := range n.Content {
			e, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			l.Append(e)
		}
		return l, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func appendMapping(l *Expr, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: key must be a scalar", k.Line)
		}
		v, err := fromNode(n.Content[i+1])
		if err != nil {
			return err
		}
		l.Append(Value(k.Value), v)
	}
	return nil
}

func isPropertySequence(n *yaml.Node) bool {
	if len(n.Content) == 0 {
		return false
	}
	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}
