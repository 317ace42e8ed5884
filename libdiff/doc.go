// Package libdiff compares trees.
//
// DiffTokens aligns the wire token streams of two trees and reports runs of
// equal, inserted and deleted tokens. Changes walks both trees in step and
// lists the positions where values differ or where one tree has a node and
// the other has none.
//
//	for _, c := range libdiff.Changes(a, b) {
//	    fmt.Println(c)
//	}
package libdiff
