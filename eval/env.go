package eval

import (
	"github.com/signadot/bintree/tree"
)

// Env is the environment an expression sees for one node.
type Env struct {
	Value    string `expr:"value"`
	Path     string `expr:"path"`
	Depth    int    `expr:"depth"`
	Ord      int    `expr:"ord"`
	Leaf     bool   `expr:"leaf"`
	HasLeft  bool   `expr:"hasLeft"`
	HasRight bool   `expr:"hasRight"`

	root *tree.Node
}

func newEnv(root, n *tree.Node, p tree.Path, depth, ord int) Env {
	return Env{
		Value:    n.Value,
		Path:     p.String(),
		Depth:    depth,
		Ord:      ord,
		Leaf:     n.IsLeaf(),
		HasLeft:  n.Left != nil,
		HasRight: n.Right != nil,
		root:     root,
	}
}

// At returns the value at path from the root, or "" when no node is there.
func (e Env) At(path string) (string, error) {
	p, err := tree.ParsePath(path)
	if err != nil {
		return "", err
	}
	n, err := e.root.GetPath(p)
	if err != nil {
		return "", nil
	}
	return n.Value, nil
}
