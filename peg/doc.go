// Package peg provides the recognition engine of the pegkit toolkit: a
// combinator-based parsing-expression-grammar matcher plus the binding
// layer that turns successful rule matches into AST nodes.
//
// # Grammar Definition
//
// Grammars are built from Rule values and expression combinators:
//
//	num := peg.Define("num", peg.Token(peg.OneOrMore(peg.Range('0', '9'))))
//	sum := peg.NewRule("sum")
//	sum.Set(peg.Seq(num, peg.ZeroOrMore(peg.Seq(peg.Term("+"), num))))
//
// A Rule is referenced directly inside expressions, so mutually recursive
// grammars are declared with NewRule first and Set later. Rule identity
// (the pointer) is the key under which build actions are registered.
//
// # Whitespace
//
// Parse takes an optional whitespace rule. It is skipped before every
// terminal and at each rule boundary, except inside Token expressions,
// which match their body verbatim.
//
// # AST Construction
//
// A Delegate maps rules to build actions. Bind associates a rule with a
// node factory; on that rule's successful match the engine instantiates
// the node, runs its Construct against the shared parse stack, and pushes
// it as the rule's synthesized value. Rules without a binding contribute
// no node.
//
// Matching backtracks freely: rule successes are recorded as events and
// discarded when an enclosing alternative fails. Build actions run only
// after the whole input has been recognized, replayed innermost-first, so
// the parse stack never observes a backtracked match.
//
// # Entry Points
//
// Parse returns the single root node or an error; ParseAs additionally
// downcasts the result to an expected root type. Syntax failures are
// reported at the furthest position reached, into the caller's ErrorList.
package peg
