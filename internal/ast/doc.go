// Package ast defines the expression tree of the language and the annotated
// Node wrapper that later passes use to attach analysis results (inferred
// types, loop facts) to tree elements without changing the payload types.
//
// Annotation kinds form a closed vocabulary: every kind is listed in the
// Annotation constraint and in the registry in annotation.go. A Node holds at
// most one value per kind; adding a second value of the same kind replaces
// the first. Nodes are not safe for concurrent mutation.
package ast
