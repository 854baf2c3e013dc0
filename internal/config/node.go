package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML core schema tags produced by yaml.Node.ShortTag.
const (
	nullTag  = "!!null"
	boolTag  = "!!bool"
	intTag   = "!!int"
	floatTag = "!!float"
)

// resolve follows alias nodes to the node they point at.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

// toValue converts a node found at a flattened position into a Value.
func toValue(node *yaml.Node) (Value, error) {
	if node == nil {
		return Absent(), nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return scalarValue(node)
	case yaml.SequenceNode, yaml.MappingNode:
		var nested any
		if err := node.Decode(&nested); err != nil {
			return Absent(), fmt.Errorf("decode nested value: %w", err)
		}

		return OtherValue(nested), nil
	default:
		return Absent(), nil
	}
}

// scalarValue applies the digit-only rule to a scalar node while keeping
// booleans and numbers typed the way the document declared them.
func scalarValue(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case nullTag:
		return Absent(), nil
	case boolTag:
		var b bool
		if err := node.Decode(&b); err != nil {
			return Absent(), fmt.Errorf("decode bool: %w", err)
		}

		return BoolValue(b), nil
	case intTag, floatTag:
		// Every integer and float is numeric already; the digit rule cannot change its kind.
		var f float64
		if err := node.Decode(&f); err != nil {
			return Absent(), fmt.Errorf("decode number: %w", err)
		}

		return NumberValue(f), nil
	default:
		return Coerce(node.Value), nil
	}
}

// formatOther renders nested structures for Value.String.
func formatOther(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	// Drop the trailing newline added by the encoder.
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}

	return string(out)
}
