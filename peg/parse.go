package peg

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
)

// Parse recognizes in against the grammar rooted at root, skipping
// whitespace per ws (which may be nil), and builds the AST via the build
// actions bound in d. Recognition failures are appended to errs as
// syntax errors at the furthest position reached.
//
// On success the single remaining node on the parse stack is returned.
// On failure the result is nil; any partially built nodes are discarded
// with the stack.
func Parse(in *Input, root, ws *Rule, errs *types.ErrorList, d *Delegate) (ast.Node, error) {
	m := newMatcher(in, ws)

	ok := root.match(m)
	if ok {
		m.skipWS()
		if m.pos != len(in.src) {
			m.failAt(m.pos, "end of input")
			ok = false
		}
	}
	if !ok {
		offset := m.failPos
		if offset < 0 {
			offset = 0
		}
		msg := "unexpected input"
		if len(m.expected) > 0 {
			msg = "expected " + strings.Join(m.expected, " or ")
		}
		err := &types.Error{Kind: types.ErrKindSyntax, Pos: in.Pos(offset), Msg: msg}
		errs.Add(err)
		return nil, err
	}

	// Replay surviving match events innermost-first. Each bound rule's
	// action pops its children and pushes one node, so a well-formed
	// grammar leaves exactly the root node behind.
	st := &ast.Stack{}
	for _, ev := range m.events {
		act, bound := d.lookup(ev.rule)
		if !bound {
			continue
		}
		span := types.Span{Begin: in.Pos(ev.begin), End: in.Pos(ev.end)}
		if err := act(span, st); err != nil {
			st.Drain()
			return nil, err
		}
	}

	if st.Len() != 1 {
		n := st.Len()
		st.Drain()
		return nil, &types.Error{
			Kind: types.ErrKindStructure,
			Msg:  fmt.Sprintf("peg: construction left %d nodes on the parse stack", n),
		}
	}
	node, _ := st.Pop()
	return node, nil
}

// ParseAs parses like Parse and downcasts the result to the expected
// root node type T. When the downcast does not hold, the untyped node is
// discarded and a type error is returned.
func ParseAs[T ast.Node](in *Input, root, ws *Rule, errs *types.ErrorList, d *Delegate) (T, error) {
	var zero T
	node, err := Parse(in, root, ws, errs, d)
	if err != nil {
		return zero, err
	}
	v, ok := node.(T)
	if !ok {
		return zero, &types.Error{
			Kind: types.ErrKindType,
			Pos:  node.Span().Begin,
			Msg:  fmt.Sprintf("peg: parse produced %T, not the requested root type", node),
		}
	}
	return v, nil
}
