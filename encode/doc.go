// Package encode encodes trees to text.
//
// # Usage
//
//	// Wire encoding, memoized on the root
//	text, ok := encode.String(root)
//
//	// Stream an encoding
//	err := encode.Encode(root, w)
//
//	// Reject values which would corrupt the wire form
//	err := encode.Encode(root, w, encode.EncodeCheckValues(true))
//
//	// Other formats
//	err := encode.Encode(root, w, encode.EncodeFormat(format.YAMLFormat))
//
// The wire form writes each node's value followed by '#' in pre-order, and
// writes "-#" for every absent child. The empty tree has no wire encoding:
// String reports false and Encode writes nothing.
//
// # Related Packages
//
//   - github.com/signadot/bintree/tree - Tree representation
//   - github.com/signadot/bintree/decode - Decode text to trees
package encode
