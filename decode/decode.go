package decode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/bintree/debug"
	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"
)

// Decode rebuilds the tree encoded in text. The empty text is the empty tree.
func Decode(text string, opts ...DecodeOption) (*tree.Node, error) {
	if text == "" {
		return nil, nil
	}
	toks, err := token.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return decodeTokens(toks, newOpts(opts))
}

// DecodeReader is Decode over the contents of r.
func DecodeReader(r io.Reader, opts ...DecodeOption) (*tree.Node, error) {
	toks, err := token.NewScanner(r).All()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(toks) == 0 {
		return nil, nil
	}
	return decodeTokens(toks, newOpts(opts))
}

func decodeTokens(toks []token.Token, o *decodeOpts) (*tree.Node, error) {
	if o.validate {
		if err := token.Validate(toks); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	pre, in := DeriveInOrder(toks)
	if debug.Decode() {
		debug.Logf("decode: pre-order %s\n", values(pre))
		debug.Logf("decode: in-order  %s\n", values(in))
	}
	root, err := BuildFromInAndPre(in, pre)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return root, nil
}

// DecodeDoc reads a tree from a document in the format given by
// DecodeFormat, the wire form by default. Trailing line breaks are ignored
// for the wire form.
func DecodeDoc(d []byte, opts ...DecodeOption) (*tree.Node, error) {
	o := newOpts(opts)
	switch o.format {
	case format.WireFormat:
		return Decode(strings.TrimRight(string(d), "\r\n"), opts...)
	case format.JSONFormat:
		return tree.FromJSON(d)
	case format.YAMLFormat:
		return tree.FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", ErrBadFormat, o.format)
	}
}

func values(es []Entry) []string {
	res := make([]string, len(es))
	for i := range es {
		res[i] = es[i].Value
	}
	return res
}
