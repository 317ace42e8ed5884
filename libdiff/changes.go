package libdiff

import (
	"fmt"
	"strconv"

	"github.com/signadot/bintree/tree"
)

// Change records a position where two trees differ. From or To is nil when
// the corresponding tree has no node there; the whole subtree is then added
// or removed, and no changes are listed below it.
type Change struct {
	Path     tree.Path
	From, To *string
}

func (c Change) String() string {
	switch {
	case c.From == nil:
		return fmt.Sprintf("%s: + %s", c.Path, strconv.Quote(*c.To))
	case c.To == nil:
		return fmt.Sprintf("%s: - %s", c.Path, strconv.Quote(*c.From))
	default:
		return fmt.Sprintf("%s: %s -> %s", c.Path, strconv.Quote(*c.From), strconv.Quote(*c.To))
	}
}

// Changes lists the differences between from and to in pre-order.
func Changes(from, to *tree.Node) []Change {
	var res []Change
	changes(from, to, tree.Path{}, &res)
	return res
}

func changes(a, b *tree.Node, p tree.Path, res *[]Change) {
	if a == nil && b == nil {
		return
	}
	if a == nil || b == nil {
		*res = append(*res, Change{Path: p, From: valueOf(a), To: valueOf(b)})
		return
	}
	if a.Value != b.Value {
		*res = append(*res, Change{Path: p, From: valueOf(a), To: valueOf(b)})
	}
	changes(a.Left, b.Left, p.Child(tree.LeftSide), res)
	changes(a.Right, b.Right, p.Child(tree.RightSide), res)
}

func valueOf(n *tree.Node) *string {
	if n == nil {
		return nil
	}
	v := n.Value
	return &v
}
