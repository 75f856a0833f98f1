package calc

import (
	"github.com/joshuapare/pegkit/peg"
	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
)

// Grammar is the arithmetic grammar plus its node bindings. One Grammar
// may serve any number of parses; it holds no per-parse state.
type Grammar struct {
	Expr     *peg.Rule
	WS       *peg.Rule
	Delegate *peg.Delegate
}

// New builds the calculator grammar:
//
//	expr    := product (('+' | '-') product)*
//	product := factor (('*' | '/') factor)*
//	factor  := number | '-' factor | '(' expr ')'
//	number  := [0-9]+ ('.' [0-9]+)?
//
// with whitespace skipped between tokens.
func New() *Grammar {
	digit := peg.Range('0', '9')
	number := peg.Define("number", peg.Token(peg.Seq(
		peg.OneOrMore(digit),
		peg.Opt(peg.Seq(peg.Term("."), peg.OneOrMore(digit))),
	)))

	expr := peg.NewRule("expr")
	factor := peg.NewRule("factor")

	neg := peg.Define("neg", peg.Seq(peg.Term("-"), factor))
	group := peg.Define("group", peg.Seq(peg.Term("("), expr, peg.Term(")")))
	factor.Set(peg.Choice(number, neg, group))

	mulStep := peg.Define("mulStep", peg.Seq(peg.Term("*"), factor))
	divStep := peg.Define("divStep", peg.Seq(peg.Term("/"), factor))
	product := peg.Define("product", peg.Seq(factor, peg.ZeroOrMore(peg.Choice(mulStep, divStep))))

	addStep := peg.Define("addStep", peg.Seq(peg.Term("+"), product))
	subStep := peg.Define("subStep", peg.Seq(peg.Term("-"), product))
	expr.Set(peg.Seq(product, peg.ZeroOrMore(peg.Choice(addStep, subStep))))

	ws := peg.Define("ws", peg.ZeroOrMore(peg.Set(" \t\r\n")))

	d := peg.NewDelegate()
	d.Bind(number, func() ast.Node { return &Number{} })
	d.Bind(neg, newNeg)
	d.Bind(mulStep, newMulStep)
	d.Bind(divStep, newDivStep)
	d.Bind(product, newChain)
	d.Bind(addStep, newAddStep)
	d.Bind(subStep, newSubStep)
	d.Bind(expr, newChain)

	return &Grammar{Expr: expr, WS: ws, Delegate: d}
}

// Parse parses in and returns the expression tree. Syntax errors are
// appended to errs and returned.
func (g *Grammar) Parse(in *peg.Input, errs *types.ErrorList) (Expr, error) {
	return peg.ParseAs[Expr](in, g.Expr, g.WS, errs, g.Delegate)
}

// Eval parses in and evaluates the resulting tree.
func (g *Grammar) Eval(in *peg.Input) (float64, error) {
	var errs types.ErrorList
	e, err := g.Parse(in, &errs)
	if err != nil {
		return 0, err
	}
	return e.Eval(in.Source())
}
