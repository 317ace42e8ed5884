package libdiff

import (
	"bytes"

	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	default:
		return " "
	}
}

// Edit is a run of wire tokens which are equal in both trees, or only
// present in one of them.
type Edit struct {
	Op     Op
	Tokens []string
}

// DiffTokens diffs the wire encodings of from and to token by token.
// Cached encodings on the trees are neither used nor set.
func DiffTokens(from, to *tree.Node) ([]Edit, error) {
	fromToks, err := wireTokens(from)
	if err != nil {
		return nil, err
	}
	toToks, err := wireTokens(to)
	if err != nil {
		return nil, err
	}
	tokMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapTokensTo(tokMap, runeMap, fromToks)
	toRunes := mapTokensTo(tokMap, runeMap, toToks)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		edit := Edit{}
		switch diff.Type {
		case diffpatch.DiffInsert:
			edit.Op = OpInsert
		case diffpatch.DiffDelete:
			edit.Op = OpDelete
		case diffpatch.DiffEqual:
			edit.Op = OpEqual
		}
		for _, r := range diff.Text {
			edit.Tokens = append(edit.Tokens, runeMap[r])
		}
		res = append(res, edit)
	}
	return res, nil
}

// Changed reports whether edits contain an insertion or deletion.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != OpEqual {
			return true
		}
	}
	return false
}

func wireTokens(n *tree.Node) ([]token.Token, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf); err != nil {
		return nil, err
	}
	return token.Tokenize(buf.String())
}

func mapTokensTo(m map[string]rune, im map[rune]string, toks []token.Token) []rune {
	rs := make([]rune, len(toks))
	for i := range toks {
		v := toks[i].Value
		r, ok := m[v]
		if !ok {
			r = indexRune(len(m))
			m[v] = r
			im[r] = v
		}
		rs[i] = r
	}
	return rs
}

// indexRune maps i to a valid rune, stepping over the surrogate range which
// would not survive conversion to a string.
func indexRune(i int) rune {
	if i >= 0xD800 {
		i += 0x800
	}
	return rune(i)
}
