// Package ast provides the tree-construction core of the pegkit parsing
// toolkit: strongly-typed AST nodes that assemble themselves from a shared
// parse stack as grammar rules match.
//
// # Overview
//
// The recognition engine (package peg) matches rules bottom-up. Each rule
// with a bound build action pushes one node onto a shared Stack when it
// succeeds. Container nodes own typed child slots; when a container is
// constructed it pops its children back off the stack, transferring
// ownership into the slots. The outermost rule leaves exactly one node on
// the stack: the parse result.
//
// # Core Types
//
//   - Node: interface implemented by every tree element (embed BaseNode)
//   - BaseNode: span + parent storage, no-op construct for leaf nodes
//   - Container: a node with declared child slots
//   - Child, Option, List: mandatory, optional, and repeated child slots
//   - Stack: the shared sequence of already-built node ownership handles
//   - Kind: per-type identity tag for reflection-free downcasts
//
// # Declaring a Node Type
//
// A container declares its slots once, in field declaration order:
//
//	type SumNode struct {
//		ast.Container
//		First ast.Child[*TermNode] // mandatory
//		Rest  ast.List[*TermNode]  // repeated
//	}
//
//	func NewSumNode() *SumNode {
//		n := &SumNode{}
//		n.Declare(n, &n.First, &n.Rest)
//		return n
//	}
//
// Construction processes slots in reverse declaration order: sub-matches
// are pushed left-to-right, so the last-declared field's value is nearest
// the top of the stack and must be popped first. Greedy and optional slots
// never consume values still needed by earlier-declared mandatory
// siblings, and never reach past the container's own matched span.
//
// # Ownership
//
// At every instant a node is owned by exactly one of: the stack, a slot,
// or the final caller. Popping transfers ownership; a slot re-parents the
// node it pops. Parent references are non-owning back-references and are
// re-established only when a node is moved or cloned into another slot.
package ast
