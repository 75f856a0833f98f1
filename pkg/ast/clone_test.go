package ast

import "testing"

func buildPair(t *testing.T) *pairNode {
	t.Helper()
	st := &Stack{}
	st.Push(newNum(0, 1))
	st.Push(newWord(2, 3))
	st.Push(newNum(4, 5))
	st.Push(newNum(6, 7))
	n := newPairNode()
	if err := n.Construct(spanAt(0, 7), st); err != nil {
		t.Fatalf("Construct: %v", err)
	}
	return n
}

func TestCloneDeepCopiesAndReparents(t *testing.T) {
	src := buildPair(t)
	dup, ok := src.Clone().(*pairNode)
	if !ok {
		t.Fatal("Clone should return a *pairNode")
	}

	if dup == src {
		t.Fatal("Clone returned the receiver")
	}
	if dup.Span() != src.Span() {
		t.Errorf("clone span = %v, want %v", dup.Span(), src.Span())
	}
	if dup.Parent() != nil {
		t.Error("a fresh clone has no parent until placed into a slot")
	}

	if dup.Left.Get() == src.Left.Get() {
		t.Error("Left child must be a copy, not shared")
	}
	if dup.Left.Get().Parent() != Node(dup) {
		t.Error("cloned Left must be parented to the clone")
	}
	if src.Left.Get().Parent() != Node(src) {
		t.Error("source Left must keep its original parent")
	}

	rv, ok := dup.Right.Get()
	if !ok {
		t.Fatal("Right should be populated in the clone")
	}
	if sv, _ := src.Right.Get(); rv == sv {
		t.Error("Right child must be a copy")
	}
	if rv.Parent() != Node(dup) {
		t.Error("cloned Right must be parented to the clone")
	}

	if dup.Items.Len() != src.Items.Len() {
		t.Fatalf("Items length %d, want %d", dup.Items.Len(), src.Items.Len())
	}
	for i := 0; i < dup.Items.Len(); i++ {
		if dup.Items.At(i) == src.Items.At(i) {
			t.Errorf("Items[%d] shared between clone and source", i)
		}
		if dup.Items.At(i).Span() != src.Items.At(i).Span() {
			t.Errorf("Items[%d] span not copied", i)
		}
		if dup.Items.At(i).Parent() != Node(dup) {
			t.Errorf("Items[%d] not re-parented to the clone", i)
		}
	}
}

func TestCloneFromEmptyOption(t *testing.T) {
	a := newPairNode()
	b := buildPair(t)
	// b has a populated Right; cloning from empty a must clear it.
	if err := b.Right.CloneFrom(&a.Right); err != nil {
		t.Fatalf("CloneFrom: %v", err)
	}
	if _, ok := b.Right.Get(); ok {
		t.Error("Right should be empty after cloning from an empty slot")
	}
}

func TestCloneFromEmptyMandatoryFails(t *testing.T) {
	a := newPairNode()
	b := newPairNode()
	if err := b.Left.CloneFrom(&a.Left); err == nil {
		t.Error("cloning an empty mandatory slot should fail")
	}
}

type opaque struct{ BaseNode }

func TestCloneFromNotCloneable(t *testing.T) {
	type holder struct {
		Container
		X Child[*opaque]
	}
	src := &holder{}
	src.Declare(src, &src.X)
	src.X.Set(&opaque{})

	dst := &holder{}
	dst.Declare(dst, &dst.X)
	if err := dst.X.CloneFrom(&src.X); err == nil {
		t.Error("cloning a node without Clone should fail")
	}
}
