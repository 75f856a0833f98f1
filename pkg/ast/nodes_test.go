package ast

import (
	"github.com/joshuapare/pegkit/pkg/types"
)

// Fixture node types shared by the package tests. They model a small
// arithmetic-like tree: numeric and word leaves plus a few container
// shapes exercising every slot variant.

var (
	litKind  = NewKind("lit", nil)
	numKind  = NewKind("num", litKind)
	wordKind = NewKind("word", litKind)
	pairKind = NewKind("pair", ContainerKind)
)

type numLit struct{ BaseNode }

func (n *numLit) Kind() *Kind { return numKind }

func (n *numLit) Clone() Node {
	c := &numLit{}
	c.SetSpan(n.Span())
	return c
}

type wordLit struct{ BaseNode }

func (n *wordLit) Kind() *Kind { return wordKind }

func (n *wordLit) Clone() Node {
	c := &wordLit{}
	c.SetSpan(n.Span())
	return c
}

// triple declares fields [A, B, C]: A mandatory, B optional, C repeated.
type triple struct {
	Container
	A Child[*numLit]
	B Option[*wordLit]
	C List[*numLit]
}

func newTriple() *triple {
	n := &triple{}
	n.Declare(n, &n.A, &n.B, &n.C)
	return n
}

// sumFixture declares a mandatory head followed by a same-typed repeated
// tail, the shape produced by rules like `sum := num ('+' num)*`.
type sumFixture struct {
	Container
	First Child[*numLit]
	Rest  List[*numLit]
}

func newSumFixture() *sumFixture {
	n := &sumFixture{}
	n.Declare(n, &n.First, &n.Rest)
	return n
}

// pairNode is the cloneable container fixture.
type pairNode struct {
	Container
	Left  Child[*numLit]
	Right Option[*wordLit]
	Items List[*numLit]
}

func newPairNode() *pairNode {
	n := &pairNode{}
	n.Declare(n, &n.Left, &n.Right, &n.Items)
	return n
}

func (n *pairNode) Kind() *Kind { return pairKind }

func (n *pairNode) Clone() Node {
	c := newPairNode()
	c.SetSpan(n.Span())
	// Fixture nodes are all cloneable, so the helpers cannot fail here.
	if err := c.Left.CloneFrom(&n.Left); err != nil {
		panic(err)
	}
	if err := c.Right.CloneFrom(&n.Right); err != nil {
		panic(err)
	}
	if err := c.Items.CloneFrom(&n.Items); err != nil {
		panic(err)
	}
	return c
}

func spanAt(begin, end int) types.Span {
	return types.Span{
		Begin: types.Pos{Offset: begin, Line: 1, Column: begin + 1},
		End:   types.Pos{Offset: end, Line: 1, Column: end + 1},
	}
}

func newNum(begin, end int) *numLit {
	n := &numLit{}
	n.SetSpan(spanAt(begin, end))
	return n
}

func newWord(begin, end int) *wordLit {
	n := &wordLit{}
	n.SetSpan(spanAt(begin, end))
	return n
}
