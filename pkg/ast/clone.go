package ast

import (
	"fmt"

	"github.com/joshuapare/pegkit/pkg/types"
)

// Cloneable is implemented by node types that support duplication. Clone
// must return a deep copy: owned children are cloned recursively and
// re-parented to the copy, while the copy's own parent is left nil until
// it is placed into a slot. The slot CloneFrom helpers take care of both
// directions.
type Cloneable interface {
	Node
	Clone() Node
}

// cloneAs duplicates v and asserts the copy back to T. The copy has no
// parent; the caller attaches it.
func cloneAs[T Node](v T) (T, error) {
	var zero T
	c, ok := Node(v).(Cloneable)
	if !ok {
		return zero, &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("ast: %T does not implement Clone", v),
		}
	}
	dup := c.Clone()
	t, ok := dup.(T)
	if !ok {
		return zero, &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("ast: clone of %T returned %T", v, dup),
		}
	}
	return t, nil
}

// CloneFrom fills the slot with a deep copy of src's occupant,
// re-parented to this slot's owner. An empty src is an error for a
// mandatory slot.
func (s *Child[T]) CloneFrom(src *Child[T]) error {
	if !src.ok {
		return &types.Error{Kind: types.ErrKindState, Msg: "ast: mandatory child slot is empty"}
	}
	dup, err := cloneAs(src.node)
	if err != nil {
		return err
	}
	s.Set(dup)
	return nil
}

// CloneFrom fills the slot with a deep copy of src's occupant, or clears
// it when src is empty.
func (s *Option[T]) CloneFrom(src *Option[T]) error {
	if !src.ok {
		s.Clear()
		return nil
	}
	dup, err := cloneAs(src.node)
	if err != nil {
		return err
	}
	s.Set(dup)
	return nil
}

// CloneFrom replaces the list's contents with deep copies of src's nodes,
// in order, each re-parented to this slot's owner.
func (s *List[T]) CloneFrom(src *List[T]) error {
	s.Clear()
	for _, v := range src.nodes {
		dup, err := cloneAs(v)
		if err != nil {
			return err
		}
		s.Append(dup)
	}
	return nil
}
