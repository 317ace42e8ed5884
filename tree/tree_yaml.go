package tree

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

type yamlNode struct {
	Value *string   `yaml:"value"`
	Left  *yamlNode `yaml:"left,omitempty"`
	Right *yamlNode `yaml:"right,omitempty"`
}

// FromYAML reads a tree document written in YAML. Since YAML is a superset of
// JSON, FromYAML also reads JSON documents. An empty or null document is the
// empty tree.
func FromYAML(d []byte) (*Node, error) {
	switch string(bytes.TrimSpace(d)) {
	case "", "~", "null", "Null", "NULL":
		return nil, nil
	}
	var doc yamlNode
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDoc, err)
	}
	return fromYAMLNode(&doc, Path{})
}

func fromYAMLNode(y *yamlNode, p Path) (*Node, error) {
	if y == nil {
		return nil, nil
	}
	if y.Value == nil {
		return nil, fmt.Errorf("%w: node without value at %s", ErrBadDoc, p)
	}
	left, err := fromYAMLNode(y.Left, p.Child(LeftSide))
	if err != nil {
		return nil, err
	}
	right, err := fromYAMLNode(y.Right, p.Child(RightSide))
	if err != nil {
		return nil, err
	}
	return New(*y.Value, left, right), nil
}

func ToYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(toYAMLNode(n))
}

func toYAMLNode(n *Node) *yamlNode {
	if n == nil {
		return nil
	}
	v := n.Value
	return &yamlNode{
		Value: &v,
		Left:  toYAMLNode(n.Left),
		Right: toYAMLNode(n.Right),
	}
}
