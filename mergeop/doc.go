// Package mergeop edits trees through their document form.
//
// JSONPatch applies an RFC 6902 JSON patch and MergePatch an RFC 7386 merge
// patch to the JSON document of a tree, then reads the result back as a
// tree. Patch paths address the document, so "/left/right/value" is the
// value of the right child of the left child of the root.
//
//	root, err = mergeop.JSONPatch(root, []byte(`[
//	    {"op": "replace", "path": "/left/value", "value": "x"},
//	    {"op": "remove", "path": "/right"}
//	]`))
//
// Results holding values the wire form cannot carry are rejected unless
// AllowReserved is given.
package mergeop
