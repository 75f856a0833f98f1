package ast

import (
	"github.com/joshuapare/pegkit/pkg/types"
)

// Slot is a typed, owning holder for child nodes within a container.
// The concrete slots are Child (exactly one), Option (zero or one) and
// List (zero or more). Slots are registered with their container via
// (*Container).Declare; the interface methods are unexported because the
// construction protocol is driven entirely from this package.
type Slot interface {
	// construct pulls the slot's value(s) off the stack. span is the
	// container's matched range; reserve is the number of stack values
	// that must be left for mandatory siblings declared earlier.
	construct(span types.Span, st *Stack, reserve int) error

	// bind records the owning node so popped children can be re-parented.
	bind(owner Node)

	// mandatory reports whether the slot must consume exactly one value.
	mandatory() bool

	// children returns the slot's current occupants in match order.
	children() []Node
}

// Container is the base of AST nodes that own declared child slots. A
// concrete container embeds it and registers its slot fields once, in
// field declaration order, from its constructor:
//
//	n := &SumNode{}
//	n.Declare(n, &n.First, &n.Rest)
//
// Declare takes the outer node explicitly so children can be re-parented
// to the concrete type rather than the embedded Container; there is no
// ambient "container under construction" state, so nested and reentrant
// constructions cannot interfere.
type Container struct {
	BaseNode
	slots []Slot
}

// Declare registers the container's slots in declaration order and binds
// them to self, the outer concrete node. It must be called exactly once,
// before the node's Construct runs.
func (c *Container) Declare(self Node, slots ...Slot) {
	for _, s := range slots {
		s.bind(self)
		c.slots = append(c.slots, s)
	}
}

// Kind returns ContainerKind. Concrete containers with a registered kind
// shadow this method.
func (c *Container) Kind() *Kind { return ContainerKind }

// Slots returns the number of registered slots.
func (c *Container) Slots() int { return len(c.slots) }

// Children returns the container's owned nodes in slot declaration
// order, which for parsed trees is left-to-right match order. Empty
// slots contribute nothing.
func (c *Container) Children() []Node {
	var out []Node
	for _, s := range c.slots {
		out = append(out, s.children()...)
	}
	return out
}

// Construct records the span and asks each registered slot to fill
// itself from the stack, in reverse declaration order. Sub-matches were
// pushed in left-to-right match order, so the last-declared field's value
// sits nearest the top and must be popped first.
//
// Before the reverse sweep, each slot is told how many stack values are
// reserved for mandatory siblings declared before it. A greedy List or an
// Option therefore never consumes a value that an earlier-declared Child
// still needs, even when all the children share one type.
//
// A slot error aborts the remaining slots. Slots populated before the
// failure keep their children; the partially built container owns them
// until it is itself discarded.
func (c *Container) Construct(span types.Span, st *Stack) error {
	c.span = span

	reserve := make([]int, len(c.slots))
	n := 0
	for i, s := range c.slots {
		reserve[i] = n
		if s.mandatory() {
			n++
		}
	}

	for i := len(c.slots) - 1; i >= 0; i-- {
		if err := c.slots[i].construct(span, st, reserve[i]); err != nil {
			return err
		}
	}
	return nil
}
