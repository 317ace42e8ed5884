// Package format names the textual forms a tree can be read from or written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// The wire form is the lossless pre-order encoding with null markers. JSON and
// YAML are nested document forms, and text is an indented drawing meant for
// people.
//
// # Related Packages
//
//   - github.com/signadot/bintree/encode - Encode trees in a format
//   - github.com/signadot/bintree/decode - Decode trees from a format
package format
