package calc

import (
	"strconv"

	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
)

// Node kinds, one per concrete type. All expression kinds descend from
// ExprKind, all operator-step kinds from StepKind, so dynamic tooling
// can classify nodes without type assertions.
var (
	ExprKind   = ast.NewKind("expr", nil)
	NumberKind = ast.NewKind("number", ExprKind)
	NegKind    = ast.NewKind("neg", ExprKind)
	ChainKind  = ast.NewKind("chain", ExprKind)

	StepKind = ast.NewKind("step", nil)
	AddKind  = ast.NewKind("add", StepKind)
	SubKind  = ast.NewKind("sub", StepKind)
	MulKind  = ast.NewKind("mul", StepKind)
	DivKind  = ast.NewKind("div", StepKind)
)

// Expr is an evaluable expression node. src must be the source text the
// tree was parsed from; leaves read their literal text through it.
type Expr interface {
	ast.Node
	Eval(src string) (float64, error)
}

// step is one trailing operator application in a left-associative
// chain: "+ x", "- x", "* x" or "/ x".
type step interface {
	ast.Node
	apply(acc float64, src string) (float64, error)
}

// Number is a numeric literal leaf.
type Number struct{ ast.BaseNode }

func (n *Number) Kind() *ast.Kind { return NumberKind }

func (n *Number) Eval(src string) (float64, error) {
	v, err := strconv.ParseFloat(n.Span().Text(src), 64)
	if err != nil {
		return 0, &types.Error{
			Kind: types.ErrKindState,
			Pos:  n.Span().Begin,
			Msg:  "calc: malformed number literal",
			Err:  err,
		}
	}
	return v, nil
}

// Neg is a unary minus applied to an expression.
type Neg struct {
	ast.Container
	X ast.Child[Expr]
}

func newNeg() ast.Node {
	n := &Neg{}
	n.Declare(n, &n.X)
	return n
}

func (n *Neg) Kind() *ast.Kind { return NegKind }

func (n *Neg) Eval(src string) (float64, error) {
	v, err := n.X.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// Chain is a left-associative operator chain: a first operand followed
// by zero or more operator steps. Both precedence levels (additive and
// multiplicative) use this shape; the steps carry the operators.
type Chain struct {
	ast.Container
	First ast.Child[Expr]
	Rest  ast.List[step]
}

func newChain() ast.Node {
	n := &Chain{}
	n.Declare(n, &n.First, &n.Rest)
	return n
}

func (n *Chain) Kind() *ast.Kind { return ChainKind }

func (n *Chain) Eval(src string) (float64, error) {
	acc, err := n.First.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	for _, s := range n.Rest.Nodes() {
		acc, err = s.apply(acc, src)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// AddStep is "+ operand".
type AddStep struct {
	ast.Container
	Operand ast.Child[Expr]
}

func newAddStep() ast.Node {
	n := &AddStep{}
	n.Declare(n, &n.Operand)
	return n
}

func (n *AddStep) Kind() *ast.Kind { return AddKind }

func (n *AddStep) apply(acc float64, src string) (float64, error) {
	v, err := n.Operand.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	return acc + v, nil
}

// SubStep is "- operand".
type SubStep struct {
	ast.Container
	Operand ast.Child[Expr]
}

func newSubStep() ast.Node {
	n := &SubStep{}
	n.Declare(n, &n.Operand)
	return n
}

func (n *SubStep) Kind() *ast.Kind { return SubKind }

func (n *SubStep) apply(acc float64, src string) (float64, error) {
	v, err := n.Operand.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	return acc - v, nil
}

// MulStep is "* operand".
type MulStep struct {
	ast.Container
	Operand ast.Child[Expr]
}

func newMulStep() ast.Node {
	n := &MulStep{}
	n.Declare(n, &n.Operand)
	return n
}

func (n *MulStep) Kind() *ast.Kind { return MulKind }

func (n *MulStep) apply(acc float64, src string) (float64, error) {
	v, err := n.Operand.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	return acc * v, nil
}

// DivStep is "/ operand". Division by zero is reported as an evaluation
// error at the divisor's position rather than producing an infinity.
type DivStep struct {
	ast.Container
	Operand ast.Child[Expr]
}

func newDivStep() ast.Node {
	n := &DivStep{}
	n.Declare(n, &n.Operand)
	return n
}

func (n *DivStep) Kind() *ast.Kind { return DivKind }

func (n *DivStep) apply(acc float64, src string) (float64, error) {
	v, err := n.Operand.Get().Eval(src)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, &types.Error{
			Kind: types.ErrKindState,
			Pos:  n.Operand.Get().Span().Begin,
			Msg:  "calc: division by zero",
		}
	}
	return acc / v, nil
}
