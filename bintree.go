// Package bintree encodes binary trees of string values to a compact text form
// and decodes them back.
//
// The wire form lists node values in pre-order, each followed by '#', with
// "-#" standing for an absent child:
//
//	1(2(4,5),3)  <->  1#2#4#-#-#5#-#-#3#-#-#
//
// The empty tree has the empty encoding. Values may repeat; decoding
// reconstructs the exact shape, whatever the duplicates.
//
// The subpackages hold the parts: tree for the node type, token for the wire
// tokens, encode and decode for the codec, libdiff and mergeop for diffing
// and patching, eval for expression queries.
package bintree

import (
	"fmt"

	"github.com/signadot/bintree/decode"
	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/libdiff"
	"github.com/signadot/bintree/mergeop"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"
)

// Encode returns the wire form of root. Values equal to the null marker or
// containing the separator are rejected. The result is cached on root, see
// encode.String.
func Encode(root *tree.Node) (string, error) {
	if err := checkValues(root); err != nil {
		return "", err
	}
	text, _ := encode.String(root)
	return text, nil
}

func checkValues(root *tree.Node) error {
	var err error
	tree.Walk(root, func(n *tree.Node, p tree.Path, _ int) bool {
		if err != nil {
			return false
		}
		if cErr := token.CheckValue(n.Value); cErr != nil {
			err = fmt.Errorf("%w: at %s: %w", encode.ErrEncoding, p, cErr)
		}
		return err == nil
	})
	return err
}

// Decode reads the wire form produced by Encode.
func Decode(text string) (*tree.Node, error) {
	return decode.Decode(text)
}

// Equal reports whether a and b have the same shape and values.
func Equal(a, b *tree.Node) bool {
	return tree.Equal(a, b)
}

// RoundTrip encodes and decodes root, checking the result equals root.
func RoundTrip(root *tree.Node) (*tree.Node, error) {
	text, err := Encode(root)
	if err != nil {
		return nil, err
	}
	res, err := Decode(text)
	if err != nil {
		return nil, err
	}
	if !tree.Equal(root, res) {
		return nil, fmt.Errorf("%w: %q decoded to %s, expected %s",
			decode.ErrInconsistent, text, res, root)
	}
	return res, nil
}

// Diff lists the positional changes taking from to to.
func Diff(from, to *tree.Node) []libdiff.Change {
	return libdiff.Changes(from, to)
}

// Patch applies an RFC 6902 JSON patch to the document form of root.
func Patch(root *tree.Node, patch []byte) (*tree.Node, error) {
	return mergeop.JSONPatch(root, patch)
}
