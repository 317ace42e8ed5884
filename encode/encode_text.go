package encode

import (
	"io"
	"strconv"

	"github.com/signadot/bintree/tree"
)

// encodeText draws node as an indented outline. An absent child is drawn as
// "-" when its sibling is present, so left and right stay distinguishable.
func encodeText(node *tree.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return nil
	}
	if err := writeString(w, textValue(es, node.Value)+"\n"); err != nil {
		return err
	}
	return encodeTextChildren(node, w, es, "")
}

func encodeTextChildren(node *tree.Node, w io.Writer, es *EncState, prefix string) error {
	if node.IsLeaf() {
		return nil
	}
	kids := []*tree.Node{node.Left, node.Right}
	for i, kid := range kids {
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		line := prefix + branch
		if es.Color != nil {
			line = es.Color(BranchColor, line)
		}
		if kid == nil {
			v := "-"
			if es.Color != nil {
				v = es.Color(NullColor, v)
			}
			if err := writeString(w, line+v+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, line+textValue(es, kid.Value)+"\n"); err != nil {
			return err
		}
		if err := encodeTextChildren(kid, w, es, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func textValue(es *EncState, v string) string {
	if v == "" || v == "-" {
		v = strconv.Quote(v)
	}
	if es.Color != nil {
		return es.Color(ValueColor, v)
	}
	return v
}
