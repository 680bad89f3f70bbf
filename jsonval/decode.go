package jsonval

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Decode parses raw JSON or YAML bytes into a Value with object member order
// preserved. YAML is a superset of JSON, so a single yaml.Node pass handles
// both formats.
func Decode(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("jsonval: failed to parse document: %w", err)
	}
	return FromYAMLNode(&root)
}

// FromYAMLNode converts a yaml.Node tree to a Value, preserving mapping
// member order. Aliases are followed; merge keys are not expanded.
func FromYAMLNode(node *yaml.Node) (Value, error) {
	if node == nil || node.Kind == 0 {
		// yaml produces a zero node for an empty document.
		return Value{kind: Null}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Value{kind: Null}, nil
		}
		return FromYAMLNode(node.Content[0])

	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)

	case yaml.ScalarNode:
		return scalarFromNode(node)

	case yaml.SequenceNode:
		arr := make([]Value, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := FromYAMLNode(item)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, v)
		}
		return Value{kind: Array, arr: arr}, nil

	case yaml.MappingNode:
		// Content alternates key, value, key, value, ...
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			key := keyNode.Value
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				key = keyNode.Alias.Value
			}
			v, err := FromYAMLNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: key, Value: v})
		}
		return newObject(members), nil

	default:
		return Value{}, fmt.Errorf("jsonval: unsupported yaml node kind %d", node.Kind)
	}
}

// scalarFromNode maps a YAML scalar node to the matching Value kind based on
// its resolved tag. Unrecognized tags fall back to the string form.
func scalarFromNode(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null", "":
		if node.Tag == "" && node.Value != "" {
			return Value{kind: String, s: node.Value}, nil
		}
		return Value{kind: Null}, nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{kind: String, s: node.Value}, nil
		}
		return Value{kind: Bool, b: b}, nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return Value{kind: String, s: node.Value}, nil
		}
		return Value{kind: Number, n: float64(n)}, nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Value{kind: String, s: node.Value}, nil
		}
		return Value{kind: Number, n: f}, nil
	default:
		return Value{kind: String, s: node.Value}, nil
	}
}
