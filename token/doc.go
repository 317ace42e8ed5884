// Package token defines the wire tokens of the tree encoding and splits
// encoded text into them.
//
// # Wire Format
//
// An encoded tree is a flat stream of tokens, each followed by the separator
// '#'. A token is either a node value or the null marker "-" standing in for
// an absent child:
//
//	1#2#4#-#-#5#-#-#2#-#1#-#-#
//
// Tokens appear in pre-order and every node contributes exactly two child
// slots, so a stream holding N values holds N+1 null markers. The empty tree
// has no encoding at all.
//
// Values must not contain '#' and must not equal "-". There is no escaping;
// CheckValue reports values which would corrupt an encoding.
//
// # Usage
//
//	toks, err := token.Tokenize(text)
//	if err != nil {
//	    return err
//	}
//	if err := token.Validate(toks); err != nil {
//	    return err
//	}
//
// Scanner reads tokens one at a time from an io.Reader.
package token
