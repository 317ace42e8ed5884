// Package tree provides the binary tree whose nodes carry text values.
//
// # Overview
//
// A tree is a *Node. The empty tree is the nil *Node; every non-nil node has a
// value and up to two children. Each node owns its children exclusively: trees
// are built by assigning children directly and never share subtrees.
//
//	root := tree.New("1",
//	    tree.New("2", tree.Leaf("4"), tree.Leaf("5")),
//	    tree.New("2", nil, tree.Leaf("1")),
//	)
//
// # Values
//
// Values are opaque text. Values destined for the wire encoding must not
// contain the separator '#' and must not equal the null marker "-"; see
// package token. Nothing in this package enforces that.
//
// # Cached Encoding
//
// A node can remember its own wire encoding (see encode.String). The cache is
// set once and is not invalidated when children or values change afterwards;
// callers who mutate an encoded tree call ResetEncoded themselves.
//
// # Navigating Nodes
//
// Paths address nodes from the root:
//
//	p, _ := tree.ParsePath("$.left.right")
//	n, err := root.GetPath(p)
//
// Walk visits nodes in pre-order with their path and depth, and PreOrder,
// InOrder and PostOrder list values in the named order.
//
// # Comparison
//
// Equal reports structural equality: equal values at equal positions. Compare
// gives a total order consistent with Equal.
//
// # Documents
//
// Trees have a nested document form, readily written in JSON or YAML:
//
//	{"value": "1", "left": {"value": "2"}, "right": {"value": "3"}}
//
// The empty tree is null. Documents with unknown keys or nodes lacking a value
// are rejected with ErrBadDoc.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Goroutines encoding or decoding
// independently should work on disjoint trees.
package tree
