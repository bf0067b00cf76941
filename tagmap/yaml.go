package tagmap

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	return &t, nil
}

// MustParse is like Parse but panics on error. Intended for embedded tables.
func MustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return t
}

// Marshal serializes a Table to YAML, keeping pair order.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

// UnmarshalYAML implements custom YAML unmarshaling for Table.
// The pairs mapping is read node by node so declaration order survives.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got %v", node.Kind)
	}

	var (
		name  string
		pairs []Pair
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "name":
			if err := val.Decode(&name); err != nil {
				return fmt.Errorf("invalid table name: %w", err)
			}
		case "pairs":
			p, err := decodePairs(val)
			if err != nil {
				return err
			}

			pairs = p
		default:
			return fmt.Errorf("line %d: unknown table field %q", key.Line, key.Value)
		}
	}

	if name == "" {
		return errors.New("table name is required")
	}

	built, err := New(name, pairs)
	if err != nil {
		return err
	}

	*t = *built

	return nil
}

func decodePairs(node *yaml.Node) ([]Pair, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: pairs must be a mapping, got %v", node.Line, node.Kind)
	}

	pairs := make([]Pair, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: pair must map a scalar to a scalar", key.Line)
		}

		pairs = append(pairs, Pair{Key: key.Value, Value: val.Value})
	}

	return pairs, nil
}

// MarshalYAML implements custom YAML marshaling for Table.
func (t *Table) MarshalYAML() (any, error) {
	pairs := &yaml.Node{Kind: yaml.MappingNode}

	for _, p := range t.pairs {
		pairs.Content = append(pairs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "name"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.name},
			{Kind: yaml.ScalarNode, Value: "pairs"},
			pairs,
		},
	}, nil
}
