package decode

import "github.com/signadot/bintree/token"

// Entry is a node value tagged with the position of the node in pre-order.
// Ord is -1 when the position is not known.
type Entry struct {
	Value string
	Ord   int
}

// DeriveInOrder splits a marked pre-order token sequence into the pre-order
// values, null markers dropped, and the in-order values of the same tree.
//
// Values are pushed on a stack. A null marker closes the left side of the
// most recently opened node still on the stack, so that node is the next one
// in in-order and is popped to the output. The marker filling the last slot
// finds the stack empty.
func DeriveInOrder(toks []token.Token) (pre, in []Entry) {
	n := len(toks) / 2
	pre = make([]Entry, 0, n)
	in = make([]Entry, 0, n)
	stack := make([]Entry, 0, n)
	for _, tok := range toks {
		if tok.Kind == token.ValueKind {
			e := Entry{Value: tok.Value, Ord: len(pre)}
			pre = append(pre, e)
			stack = append(stack, e)
			continue
		}
		if len(stack) == 0 {
			continue
		}
		top := len(stack) - 1
		in = append(in, stack[top])
		stack = stack[:top]
	}
	return pre, in
}
