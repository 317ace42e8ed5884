package tree

// Walk calls f for each node of root in pre-order, with the path to the node
// and its depth (the root has depth 0). When f returns false the children of
// that node are skipped.
func Walk(root *Node, f func(n *Node, p Path, depth int) bool) {
	walk(root, nil, f)
}

func walk(n *Node, p Path, f func(*Node, Path, int) bool) {
	if n == nil {
		return
	}
	if !f(n, p, len(p)) {
		return
	}
	walk(n.Left, p.Child(LeftSide), f)
	walk(n.Right, p.Child(RightSide), f)
}

// PreOrder lists the values of root, each node before its subtrees, left
// before right.
func PreOrder(root *Node) []string {
	res := []string{}
	var f func(*Node)
	f = func(n *Node) {
		if n == nil {
			return
		}
		res = append(res, n.Value)
		f(n.Left)
		f(n.Right)
	}
	f(root)
	return res
}

// InOrder lists the values of root with the left subtree before the node and
// the node before the right subtree.
func InOrder(root *Node) []string {
	res := []string{}
	var f func(*Node)
	f = func(n *Node) {
		if n == nil {
			return
		}
		f(n.Left)
		res = append(res, n.Value)
		f(n.Right)
	}
	f(root)
	return res
}

func PostOrder(root *Node) []string {
	res := []string{}
	var f func(*Node)
	f = func(n *Node) {
		if n == nil {
			return
		}
		f(n.Left)
		f(n.Right)
		res = append(res, n.Value)
	}
	f(root)
	return res
}
