package metadata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for RefSpec.
// Accepts either a single identifier or a mapping.
func (r *RefSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string

		err := node.Decode(&value)
		if err != nil {
			return err
		}

		*r = RefSpec{Value: value}

		return nil

	case yaml.MappingNode:
		// Decode into an alias type to avoid infinite recursion.
		type rawRefSpec RefSpec

		var raw rawRefSpec

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		*r = RefSpec(raw)

		return nil

	default:
		return fmt.Errorf("expected identifier or mapping for reference, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for RefSpec.
// Outputs a bare identifier when value and type agree and nothing is imported.
func (r RefSpec) MarshalYAML() (any, error) {
	if r.From == "" && (r.Type == "" || r.Type == r.Value) {
		return r.Value, nil
	}

	type rawRefSpec RefSpec

	return rawRefSpec(r), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for RefSpecArray.
// A single reference is accepted in place of a list.
func (a *RefSpecArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		var single RefSpec

		err := node.Decode(&single)
		if err != nil {
			return err
		}

		*a = RefSpecArray{single}

		return nil

	case yaml.SequenceNode:
		var arr []RefSpec

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*a = arr

		return nil

	default:
		return fmt.Errorf("expected reference or list of references, got %v", node.Kind)
	}
}
