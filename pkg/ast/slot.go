package ast

import (
	"fmt"

	"github.com/joshuapare/pegkit/pkg/types"
)

// available reports whether the stack top may be consumed by a slot of a
// container matched over span: the value must exist, must not be reserved
// for a mandatory sibling, and must have been matched within the
// container's own range. A node whose span begins before the container's
// belongs to an enclosing production and is never touched.
func available(span types.Span, st *Stack, reserve int) (Node, bool) {
	if st.Len() <= reserve {
		return nil, false
	}
	top, ok := st.Top()
	if !ok {
		return nil, false
	}
	if top.Span().Begin.Before(span.Begin) {
		return nil, false
	}
	return top, true
}

// Child is a mandatory child slot: it owns exactly one node of type T,
// popped from the stack during construction. A missing or wrong-typed
// value is a structural error that aborts the enclosing container's
// construction.
type Child[T Node] struct {
	owner Node
	node  T
	ok    bool
}

func (s *Child[T]) bind(owner Node) { s.owner = owner }
func (s *Child[T]) mandatory() bool { return true }

func (s *Child[T]) children() []Node {
	if !s.ok {
		return nil
	}
	return []Node{s.node}
}

func (s *Child[T]) construct(span types.Span, st *Stack, reserve int) error {
	top, ok := available(span, st, reserve)
	if !ok {
		return &types.Error{
			Kind: types.ErrKindStructure,
			Pos:  span.Begin,
			Msg:  "ast: no value on parse stack for mandatory child",
		}
	}
	v, ok := top.(T)
	if !ok {
		return &types.Error{
			Kind: types.ErrKindStructure,
			Pos:  span.Begin,
			Msg:  fmt.Sprintf("ast: mandatory child has unexpected type %T", top),
		}
	}
	st.Pop()
	s.attach(v)
	return nil
}

func (s *Child[T]) attach(v T) {
	s.node = v
	s.ok = true
	v.setParent(s.owner)
}

// Get returns the owned node. It is the zero value of T until the slot
// has been populated.
func (s *Child[T]) Get() T { return s.node }

// Ok reports whether the slot holds a node.
func (s *Child[T]) Ok() bool { return s.ok }

// Set replaces the slot's occupant with v, re-parenting v to the owning
// node and clearing the previous occupant's parent. v must not be owned
// by another slot or sitting on a stack.
func (s *Child[T]) Set(v T) {
	if s.ok {
		s.node.setParent(nil)
	}
	s.attach(v)
}

// Option is an optional child slot: it owns zero or one node of type T.
// A stack top that does not downcast to T leaves the slot empty and the
// stack untouched, so earlier-declared siblings still observe the value.
type Option[T Node] struct {
	owner Node
	node  T
	ok    bool
}

func (s *Option[T]) bind(owner Node) { s.owner = owner }
func (s *Option[T]) mandatory() bool { return false }

func (s *Option[T]) children() []Node {
	if !s.ok {
		return nil
	}
	return []Node{s.node}
}

func (s *Option[T]) construct(span types.Span, st *Stack, reserve int) error {
	top, ok := available(span, st, reserve)
	if !ok {
		return nil
	}
	v, ok := top.(T)
	if !ok {
		return nil
	}
	st.Pop()
	s.attach(v)
	return nil
}

func (s *Option[T]) attach(v T) {
	s.node = v
	s.ok = true
	v.setParent(s.owner)
}

// Get returns the owned node and whether the slot is populated.
func (s *Option[T]) Get() (T, bool) { return s.node, s.ok }

// Ok reports whether the slot holds a node.
func (s *Option[T]) Ok() bool { return s.ok }

// Set replaces the slot's occupant with v. See (*Child).Set.
func (s *Option[T]) Set(v T) {
	if s.ok {
		s.node.setParent(nil)
	}
	s.attach(v)
}

// Clear empties the slot, detaching the current occupant if any.
func (s *Option[T]) Clear() {
	if s.ok {
		s.node.setParent(nil)
	}
	var zero T
	s.node = zero
	s.ok = false
}

// List is a repeated child slot: it owns an ordered sequence of nodes of
// type T. Construction pops a maximal homogeneous run from the stack top
// and stops, without error, at the first value that does not downcast to
// T, is reserved for a mandatory sibling, or lies outside the container's
// span. Zero elements is a valid outcome.
type List[T Node] struct {
	owner Node
	nodes []T
}

func (s *List[T]) bind(owner Node) { s.owner = owner }
func (s *List[T]) mandatory() bool { return false }

func (s *List[T]) children() []Node {
	out := make([]Node, len(s.nodes))
	for i, v := range s.nodes {
		out[i] = v
	}
	return out
}

func (s *List[T]) construct(span types.Span, st *Stack, reserve int) error {
	// Popping proceeds top-to-bottom, i.e. reverse match order; collect
	// then flip so the list reads left-to-right.
	var popped []T
	for {
		top, ok := available(span, st, reserve)
		if !ok {
			break
		}
		v, ok := top.(T)
		if !ok {
			break
		}
		st.Pop()
		popped = append(popped, v)
	}

	s.nodes = make([]T, len(popped))
	for i, v := range popped {
		s.nodes[len(popped)-1-i] = v
		v.setParent(s.owner)
	}
	return nil
}

// Len returns the number of owned nodes.
func (s *List[T]) Len() int { return len(s.nodes) }

// At returns the i-th owned node in left-to-right match order.
func (s *List[T]) At(i int) T { return s.nodes[i] }

// Nodes returns the owned nodes in left-to-right match order. The slice
// is the slot's backing store; callers must not mutate it.
func (s *List[T]) Nodes() []T { return s.nodes }

// Append adds v to the end of the list, re-parenting it to the owning
// node. v must not be owned by another slot or sitting on a stack.
func (s *List[T]) Append(v T) {
	v.setParent(s.owner)
	s.nodes = append(s.nodes, v)
}

// Clear empties the list, detaching every owned node.
func (s *List[T]) Clear() {
	for _, v := range s.nodes {
		v.setParent(nil)
	}
	s.nodes = nil
}
