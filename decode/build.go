package decode

import (
	"fmt"
	"slices"

	"github.com/signadot/bintree/debug"
	"github.com/signadot/bintree/tree"
)

type builder struct {
	in      []Entry
	pre     []Entry
	next    int
	visited []bool
	// occ maps each value to its in-order positions, ascending.
	occ map[string][]int
}

// BuildFromInAndPre reconstructs the tree with in-order sequence in and
// pre-order sequence pre. Both must come from the same tree; pairs that
// cannot describe one tree give ErrInconsistent.
func BuildFromInAndPre(in, pre []Entry) (*tree.Node, error) {
	if len(in) != len(pre) {
		return nil, fmt.Errorf("%w: %d in-order entries, %d pre-order entries",
			ErrInconsistent, len(in), len(pre))
	}
	if len(in) == 0 {
		return nil, nil
	}
	b := &builder{
		in:      in,
		pre:     pre,
		visited: make([]bool, len(in)),
		occ:     make(map[string][]int),
	}
	for i := range in {
		b.occ[in[i].Value] = append(b.occ[in[i].Value], i)
	}
	return b.buildRange(0, len(in)-1)
}

// BuildFromStrings is BuildFromInAndPre over bare values.
func BuildFromStrings(in, pre []string) (*tree.Node, error) {
	return BuildFromInAndPre(entries(in), entries(pre))
}

func entries(vs []string) []Entry {
	res := make([]Entry, len(vs))
	for i, v := range vs {
		res[i] = Entry{Value: v, Ord: -1}
	}
	return res
}

// buildRange builds the subtree whose in-order values are in[start..end].
// Every non-empty range takes exactly one pre-order entry and splits the
// rest, so the queue is consumed once and in order.
func (b *builder) buildRange(start, end int) (*tree.Node, error) {
	if start > end {
		return nil, nil
	}
	e := b.pre[b.next]
	b.next++
	idx, err := b.resolveIndex(e, start, end)
	if err != nil {
		return nil, err
	}
	if debug.Build() {
		debug.Logf("build: %q (pre %d) at in-order %d of [%d, %d]\n", e.Value, e.Ord, idx, start, end)
	}
	node := tree.Leaf(e.Value)
	if start == end {
		return node, nil
	}
	if node.Left, err = b.buildRange(start, idx-1); err != nil {
		return nil, err
	}
	if node.Right, err = b.buildRange(idx+1, end); err != nil {
		return nil, err
	}
	return node, nil
}

// resolveIndex finds the in-order position of e within [start, end]. It
// starts at the first occurrence of the value in the range and steps through
// the following occurrences, stopping at the first one not yet visited whose
// ordinal matches, when ordinals are known. The position is marked visited.
func (b *builder) resolveIndex(e Entry, start, end int) (int, error) {
	occ := b.occ[e.Value]
	j, _ := slices.BinarySearch(occ, start)
	for ; j < len(occ) && occ[j] <= end; j++ {
		i := occ[j]
		if b.visited[i] {
			continue
		}
		if e.Ord >= 0 && b.in[i].Ord >= 0 && b.in[i].Ord != e.Ord {
			continue
		}
		b.visited[i] = true
		return i, nil
	}
	return -1, fmt.Errorf("%w: no unvisited occurrence of %q (pre-order %d) in in-order positions [%d, %d]",
		ErrInconsistent, e.Value, e.Ord, start, end)
}
