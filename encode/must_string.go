package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/bintree/tree"
)

// MustString encodes node with opts and panics on failure. Trailing space is
// trimmed.
func MustString(node *tree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
