package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/bintree/debug"
	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"
)

type EncState struct {
	format      format.Format
	checkValues bool
	newline     bool
	indent      int

	// ord counts values written so far, for error positions.
	ord int

	Color func(ColorAttr, string) string
}

// String returns the wire encoding of node, or false for the empty tree.
//
// The result is cached on node, and later calls return the cached text
// without walking the tree. Values are not checked. If node or its
// descendants change after encoding, call node.ResetEncoded first.
func String(node *tree.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	if s, ok := node.Encoded(); ok {
		return s, true
	}
	buf := &strings.Builder{}
	if err := encodeWire(node, buf, &EncState{}); err != nil {
		// unreachable: strings.Builder does not fail and values are unchecked.
		panic(err)
	}
	s := buf.String()
	node.SetEncoded(s)
	if debug.Encode() {
		debug.Logf("encoded %d nodes to %q\n", node.Size(), s)
	}
	return s, true
}

func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	switch es.format {
	case format.WireFormat:
		if node == nil {
			return nil
		}
		err = encodeWire(node, w, es)
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		err = encodeYAML(node, w, es)
	case format.TextFormat:
		err = encodeText(node, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
	if err != nil {
		return err
	}
	if es.newline && es.format != format.YAMLFormat && es.format != format.TextFormat {
		return writeString(w, "\n")
	}
	return nil
}

// encodeWire writes node in pre-order with null markers. It keeps its own
// stack so that deep trees do not recurse.
func encodeWire(node *tree.Node, w io.Writer, es *EncState) error {
	sep := string(token.Separator)
	stack := []*tree.Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			if err := writeToken(w, es, NullColor, token.NullMarker, sep); err != nil {
				return err
			}
			continue
		}
		if es.checkValues {
			if err := token.CheckValue(n.Value); err != nil {
				return fmt.Errorf("%w: node %d in pre-order: %w", ErrEncoding, es.ord, err)
			}
		}
		if err := writeToken(w, es, ValueColor, n.Value, sep); err != nil {
			return err
		}
		es.ord++
		stack = append(stack, n.Right, n.Left)
	}
	return nil
}

func writeToken(w io.Writer, es *EncState, attr ColorAttr, v, sep string) error {
	if es.Color != nil {
		v = es.Color(attr, v)
		sep = es.Color(SepColor, sep)
	}
	return writeString(w, v+sep)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeJSON(node *tree.Node, w io.Writer, es *EncState) error {
	if err := checkValues(node, es); err != nil {
		return err
	}
	var (
		d   []byte
		err error
	)
	if es.indent > 0 {
		d, err = json.MarshalIndent(node, "", strings.Repeat(" ", es.indent))
	} else {
		d, err = tree.ToJSON(node)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func encodeYAML(node *tree.Node, w io.Writer, es *EncState) error {
	if err := checkValues(node, es); err != nil {
		return err
	}
	d, err := tree.ToYAML(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func checkValues(node *tree.Node, es *EncState) error {
	if !es.checkValues {
		return nil
	}
	var err error
	tree.Walk(node, func(n *tree.Node, p tree.Path, _ int) bool {
		if err != nil {
			return false
		}
		if cErr := token.CheckValue(n.Value); cErr != nil {
			err = fmt.Errorf("%w: at %s: %w", ErrEncoding, p, cErr)
		}
		return err == nil
	})
	return err
}
