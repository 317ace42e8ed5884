// Package eval selects tree nodes with boolean expr-lang expressions.
//
// An expression is evaluated once per node, in pre-order, against Env:
//
//	value == "2" && !leaf
//	depth > 1 && hasRight
//	At("$.left") == value
//
// At returns the value at a path from the root, or "" when there is no node
// there. getenv reads the process environment.
package eval
