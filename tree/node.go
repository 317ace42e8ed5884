package tree

import (
	"strconv"
	"strings"
)

type Node struct {
	Value string
	Left  *Node
	Right *Node

	encoded *string
}

func New(value string, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}

func Leaf(value string) *Node {
	return &Node{Value: value}
}

// IsEmpty reports whether n is the empty tree.
func (n *Node) IsEmpty() bool { return n == nil }

func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// GetValue returns the value of n, and false for the empty tree.
func (n *Node) GetValue() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.Value, true
}

func (n *Node) GetLeft() *Node {
	if n == nil {
		return nil
	}
	return n.Left
}

func (n *Node) GetRight() *Node {
	if n == nil {
		return nil
	}
	return n.Right
}

// The setters return n so trees can be assembled top down.

func (n *Node) SetValue(v string) *Node {
	n.Value = v
	return n
}

func (n *Node) SetLeft(c *Node) *Node {
	n.Left = c
	return n
}

func (n *Node) SetRight(c *Node) *Node {
	n.Right = c
	return n
}

// Encoded returns the cached encoding of n, if one was recorded.
func (n *Node) Encoded() (string, bool) {
	if n == nil || n.encoded == nil {
		return "", false
	}
	return *n.encoded, true
}

func (n *Node) SetEncoded(s string) {
	n.encoded = &s
}

// ResetEncoded drops the cached encoding of n. Only n is affected; caches
// recorded on descendants are left alone.
func (n *Node) ResetEncoded() {
	if n == nil {
		return
	}
	n.encoded = nil
}

// Clone returns a deep copy of n without any cached encodings.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Value: n.Value,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Depth is the number of nodes on the longest root to leaf path.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// String renders n compactly, eg 1(2(4,5),2(-,1)). It is meant for
// diagnostics; use package encode for the wire form.
func (n *Node) String() string {
	buf := &strings.Builder{}
	n.writeTo(buf)
	return buf.String()
}

func (n *Node) writeTo(buf *strings.Builder) {
	if n == nil {
		buf.WriteString("-")
		return
	}
	buf.WriteString(quoteValue(n.Value))
	if n.IsLeaf() {
		return
	}
	buf.WriteByte('(')
	n.Left.writeTo(buf)
	buf.WriteByte(',')
	n.Right.writeTo(buf)
	buf.WriteByte(')')
}

func quoteValue(v string) string {
	if v == "" || v == "-" || strings.ContainsAny(v, "(),\"\n") {
		return strconv.Quote(v)
	}
	return v
}
