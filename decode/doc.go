// Package decode rebuilds trees from their text encodings.
//
// # Usage
//
//	root, err := decode.Decode("1#2#-#-#3#-#-#")
//	if err != nil {
//	    return err
//	}
//
// The empty text decodes to the empty tree (nil) without error.
//
// # Pipeline
//
// Decoding runs in three stages:
//
//   - token.Tokenize splits the text into values and null markers, and
//     token.Validate checks the full-slot pre-order shape.
//   - DeriveInOrder scans the tokens with a stack, pushing values and popping
//     one on each null marker. The popped values form the in-order sequence.
//     The values alone, markers dropped, form the pre-order sequence.
//   - BuildFromInAndPre consumes the pre-order sequence as a queue and splits
//     in-order index ranges recursively, left range for the left subtree and
//     right range for the right.
//
// Each sequence entry carries the ordinal of its value in pre-order. When a
// value occurs several times in a range, the builder steps through its
// occurrences from left to right, skipping positions already taken and
// positions owned by other ordinals. Trees with any arrangement of duplicate
// values therefore decode to their exact shape.
//
// BuildFromStrings accepts plain value sequences without ordinals. It falls
// back to taking the first unvisited occurrence, which can pick a different
// shape when a value repeats along a root to leaf path.
//
// # Related Packages
//
//   - github.com/signadot/bintree/token - Wire tokens
//   - github.com/signadot/bintree/encode - Encode trees to text
package decode
