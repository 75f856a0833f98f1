package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pegkit/peg"
	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
)

func TestEval(t *testing.T) {
	g := New()
	cases := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"1+2", 3},
		{"1-2-3", -4},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"100/10/5", 2},
		{"10/4", 2.5},
		{"-3+5", 2},
		{"2--3", 5},
		{"1 + 2 * -3", -5},
		{"3.5 * 2", 7},
		{"((((7))))", 7},
		{"  1 +\t2\n", 3},
	}
	for _, c := range cases {
		got, err := g.Eval(peg.NewInput("test", c.src))
		require.NoError(t, err, "src %q", c.src)
		assert.InDelta(t, c.want, got, 1e-9, "src %q", c.src)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	g := New()
	_, err := g.Eval(peg.NewInput("test", "1/0"))
	require.Error(t, err)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, types.ErrKindState, terr.Kind)
	assert.Equal(t, 2, terr.Pos.Offset, "the divisor's position is reported")
}

func TestParseSyntaxError(t *testing.T) {
	g := New()
	for _, src := range []string{"", "1+*2", "(1+2", "1 2", "+"} {
		var errs types.ErrorList
		_, err := g.Parse(peg.NewInput("test", src), &errs)
		require.Error(t, err, "src %q", src)
		require.GreaterOrEqual(t, errs.Len(), 1, "src %q", src)

		var terr *types.Error
		require.True(t, errors.As(err, &terr), "src %q", src)
		assert.Equal(t, types.ErrKindSyntax, terr.Kind, "src %q", src)
	}
}

func TestParseTreeShape(t *testing.T) {
	g := New()
	in := peg.NewInput("test", "1+2*3")
	var errs types.ErrorList

	e, err := g.Parse(in, &errs)
	require.NoError(t, err)

	root, ok := ast.As[*Chain](e)
	require.True(t, ok)
	assert.Equal(t, "1+2*3", in.Text(root.Span()))

	first, ok := ast.As[*Chain](root.First.Get())
	require.True(t, ok)
	assert.Equal(t, "1", in.Text(first.Span()))

	require.Equal(t, 1, root.Rest.Len())
	add, ok := root.Rest.At(0).(*AddStep)
	require.True(t, ok)
	assert.Equal(t, "+2*3", in.Text(add.Span()))

	prod, ok := ast.As[*Chain](add.Operand.Get())
	require.True(t, ok)
	require.Equal(t, 1, prod.Rest.Len())
	assert.Equal(t, MulKind, prod.Rest.At(0).Kind())
}

func TestKindHierarchy(t *testing.T) {
	assert.True(t, NumberKind.Is(ExprKind))
	assert.True(t, DivKind.Is(StepKind))
	assert.False(t, NumberKind.Is(StepKind))
	assert.True(t, ChainKind.Is(ast.NodeKind))
}

func TestTreeRendering(t *testing.T) {
	g := New()
	in := peg.NewInput("test", "(1+2)*3")
	var errs types.ErrorList
	e, err := g.Parse(in, &errs)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, ast.Fprint(&b, e, in.Source(), ast.DefaultPrintOptions()))
	out := b.String()
	assert.Contains(t, out, "chain")
	assert.Contains(t, out, "mul")
	assert.Contains(t, out, `"3"`)

	tree := ast.MarshalTree(e, in.Source())
	assert.Equal(t, "chain", tree.Kind)
	require.NotEmpty(t, tree.Children)
}

func TestParentLinks(t *testing.T) {
	g := New()
	in := peg.NewInput("test", "4*5")
	var errs types.ErrorList
	e, err := g.Parse(in, &errs)
	require.NoError(t, err)

	root := e.(*Chain)
	assert.Nil(t, root.Parent())

	inner := root.First.Get().(*Chain)
	assert.Equal(t, ast.Node(root), inner.Parent())
	require.Equal(t, 1, inner.Rest.Len())
	assert.Equal(t, ast.Node(inner), inner.Rest.At(0).Parent())
}
