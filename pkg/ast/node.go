package ast

import (
	"github.com/joshuapare/pegkit/pkg/types"
)

// Node is the interface implemented by every AST element. Concrete node
// types embed BaseNode (leaves) or Container (nodes with children), which
// satisfy the interface on their behalf.
type Node interface {
	// Span returns the input range the node's rule matched.
	Span() types.Span

	// Parent returns the node's owning container, or nil for a root.
	// The reference is non-owning: it must never be used to extend the
	// lifetime of the parent.
	Parent() Node

	// Kind returns the node's identity tag. Types that register their
	// own kind override this; the default is NodeKind (ContainerKind for
	// containers).
	Kind() *Kind

	// Construct fills the node from the parse stack. It is invoked
	// exactly once, by the build action bound to the node's rule,
	// immediately after the node is instantiated and before it is pushed
	// onto the stack. The BaseNode implementation records the span and
	// nothing else; Container pops declared children.
	Construct(span types.Span, st *Stack) error

	// setParent is unexported so that every node type must embed
	// BaseNode or Container from this package.
	setParent(p Node)
}

// BaseNode supplies span and parent storage plus the leaf construct
// behavior. Atomic node types (numbers, identifiers, operators) embed it
// directly and carry nothing but the matched span.
type BaseNode struct {
	span   types.Span
	parent Node
}

// Span returns the input range recorded at construction.
func (n *BaseNode) Span() types.Span { return n.span }

// Parent returns the owning container, or nil for a root.
func (n *BaseNode) Parent() Node { return n.parent }

// Kind returns NodeKind. Concrete types with a registered kind shadow
// this method.
func (n *BaseNode) Kind() *Kind { return NodeKind }

// Construct records the matched span. Leaf node types that need no
// children inherit this as-is.
func (n *BaseNode) Construct(span types.Span, st *Stack) error {
	n.span = span
	return nil
}

// SetSpan records the span outside the construct protocol. Clones and
// synthesized nodes use it; parsed nodes get their span via Construct.
func (n *BaseNode) SetSpan(span types.Span) { n.span = span }

func (n *BaseNode) setParent(p Node) { n.parent = p }
