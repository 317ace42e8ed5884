package tree

import "strings"

// Equal reports whether a and b have equal values at every position. Two
// empty trees are equal; an empty and a non-empty tree are not. Cached
// encodings are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// The empty tree sorts first, then trees are ordered by root value, then by
// left subtree, then by right subtree.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	if c := Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return Compare(a.Right, b.Right)
}
