package peg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Expr is a parsing expression. Expressions are composed with the
// combinator functions in this file; Rule values are themselves
// expressions, which is how grammars recurse.
type Expr interface {
	match(m *matcher) bool
}

// Rule is one grammar production. Its pointer identity is the opaque
// handle under which build actions are bound. The body may be set after
// creation so that mutually recursive rules can reference each other.
type Rule struct {
	name string
	body Expr
}

// NewRule creates a rule with no body. Set must be called before the
// rule is matched.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Define creates a rule and sets its body in one step.
func Define(name string, body Expr) *Rule {
	return &Rule{name: name, body: body}
}

// Set assigns the rule's body. Calling Set on a rule that already has a
// body replaces it.
func (r *Rule) Set(body Expr) { r.body = body }

// Name returns the rule's name, used in diagnostics.
func (r *Rule) Name() string { return r.name }

func (r *Rule) match(m *matcher) bool {
	if r.body == nil {
		panic(fmt.Sprintf("peg: rule %q matched before its body was set", r.name))
	}
	m.skipWS()
	start := m.pos
	mark := len(m.events)
	if !r.body.match(m) {
		m.pos = start
		m.events = m.events[:mark]
		return false
	}
	m.events = append(m.events, event{rule: r, begin: start, end: m.pos})
	return true
}

// -----------------------------------------------------------------------------
// Terminals
// -----------------------------------------------------------------------------

type termExpr struct{ s string }

// Term matches the literal string s.
func Term(s string) Expr { return termExpr{s: s} }

func (e termExpr) match(m *matcher) bool {
	m.skipWS()
	if strings.HasPrefix(m.rest(), e.s) {
		m.pos += len(e.s)
		return true
	}
	m.failAt(m.pos, strconv.Quote(e.s))
	return false
}

type setExpr struct{ chars string }

// Set matches any single rune contained in chars.
func Set(chars string) Expr { return setExpr{chars: chars} }

func (e setExpr) match(m *matcher) bool {
	m.skipWS()
	r, size := utf8.DecodeRuneInString(m.rest())
	if size > 0 && strings.ContainsRune(e.chars, r) {
		m.pos += size
		return true
	}
	m.failAt(m.pos, "one of "+strconv.Quote(e.chars))
	return false
}

type rangeExpr struct{ lo, hi rune }

// Range matches any single rune in [lo, hi].
func Range(lo, hi rune) Expr { return rangeExpr{lo: lo, hi: hi} }

func (e rangeExpr) match(m *matcher) bool {
	m.skipWS()
	r, size := utf8.DecodeRuneInString(m.rest())
	if size > 0 && r >= e.lo && r <= e.hi {
		m.pos += size
		return true
	}
	m.failAt(m.pos, fmt.Sprintf("[%c-%c]", e.lo, e.hi))
	return false
}

type anyExpr struct{}

// Any matches any single rune.
func Any() Expr { return anyExpr{} }

func (e anyExpr) match(m *matcher) bool {
	m.skipWS()
	_, size := utf8.DecodeRuneInString(m.rest())
	if size > 0 {
		m.pos += size
		return true
	}
	m.failAt(m.pos, "any character")
	return false
}

// -----------------------------------------------------------------------------
// Composition
// -----------------------------------------------------------------------------

type seqExpr struct{ items []Expr }

// Seq matches the given expressions one after another; it fails, and
// consumes nothing, if any element fails.
func Seq(items ...Expr) Expr { return seqExpr{items: items} }

func (e seqExpr) match(m *matcher) bool {
	start := m.pos
	mark := len(m.events)
	for _, it := range e.items {
		if !it.match(m) {
			m.pos = start
			m.events = m.events[:mark]
			return false
		}
	}
	return true
}

type choiceExpr struct{ items []Expr }

// Choice matches the first of the given expressions that succeeds
// (ordered choice; no reconsideration once an alternative matches).
func Choice(items ...Expr) Expr { return choiceExpr{items: items} }

func (e choiceExpr) match(m *matcher) bool {
	for _, it := range e.items {
		if it.match(m) {
			return true
		}
	}
	return false
}

type repExpr struct {
	body Expr
	min  int
}

// ZeroOrMore matches body as many times as possible, succeeding even at
// zero repetitions.
func ZeroOrMore(body Expr) Expr { return repExpr{body: body, min: 0} }

// OneOrMore matches body as many times as possible, requiring at least
// one repetition.
func OneOrMore(body Expr) Expr { return repExpr{body: body, min: 1} }

func (e repExpr) match(m *matcher) bool {
	start := m.pos
	mark := len(m.events)
	n := 0
	for {
		before := m.pos
		if !e.body.match(m) {
			break
		}
		n++
		if m.pos == before {
			break // zero-width match; stop instead of looping forever
		}
	}
	if n < e.min {
		m.pos = start
		m.events = m.events[:mark]
		return false
	}
	return true
}

type optExpr struct{ body Expr }

// Opt matches body if possible and succeeds either way.
func Opt(body Expr) Expr { return optExpr{body: body} }

func (e optExpr) match(m *matcher) bool {
	e.body.match(m)
	return true
}

// -----------------------------------------------------------------------------
// Predicates and lexical mode
// -----------------------------------------------------------------------------

type andExpr struct{ body Expr }

// And is the positive lookahead predicate: it succeeds when body matches
// but consumes nothing.
func And(body Expr) Expr { return andExpr{body: body} }

func (e andExpr) match(m *matcher) bool {
	start := m.pos
	mark := len(m.events)
	m.silent++
	ok := e.body.match(m)
	m.silent--
	m.pos = start
	m.events = m.events[:mark]
	return ok
}

type notExpr struct{ body Expr }

// Not is the negative lookahead predicate: it succeeds when body does
// not match, and consumes nothing.
func Not(body Expr) Expr { return notExpr{body: body} }

func (e notExpr) match(m *matcher) bool {
	start := m.pos
	mark := len(m.events)
	m.silent++
	ok := e.body.match(m)
	m.silent--
	m.pos = start
	m.events = m.events[:mark]
	return !ok
}

type tokenExpr struct{ body Expr }

// Token matches body with whitespace skipping disabled, so the body is
// matched verbatim. Use it around lexical elements such as numbers and
// identifiers.
func Token(body Expr) Expr { return tokenExpr{body: body} }

func (e tokenExpr) match(m *matcher) bool {
	m.skipWS() // skip leading whitespace once, then match verbatim
	m.token++
	ok := e.body.match(m)
	m.token--
	return ok
}
