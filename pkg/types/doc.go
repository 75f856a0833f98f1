// Package types holds the shared value types of the toolkit: input
// positions and spans, and the typed error/error-list machinery used by
// both the recognition engine and the tree-construction core.
//
// It sits at the bottom of the dependency graph and imports nothing
// else from this module, so every other package can use it freely.
package types
