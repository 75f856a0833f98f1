package peg

import (
	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
)

// Factory creates a default-constructed node, ready for Construct. The
// constructor of the node type (which declares its slots) is the usual
// factory.
type Factory func() ast.Node

// Action is a build action: the stack effect applied when its rule
// matches. Actions produced by Bind instantiate a node, construct it
// from the stack, and push it; BindAction installs a raw action for
// rules that need a custom stack effect.
type Action func(span types.Span, st *ast.Stack) error

// Delegate maps rules to build actions. Bindings are installed once, at
// grammar definition time, and looked up by the engine at each
// successful match. Rules without a binding have no stack effect.
//
// A Delegate is an explicit object rather than process state: separate
// grammars, and separate parses of one grammar, never share bindings
// implicitly.
type Delegate struct {
	actions map[*Rule]Action
}

// NewDelegate creates an empty binding registry.
func NewDelegate() *Delegate {
	return &Delegate{actions: make(map[*Rule]Action)}
}

// Bind declares that r's AST result is the node produced by f: on each
// surviving match of r, the engine instantiates the node, runs its
// Construct with the matched span and the shared stack, and pushes it.
func (d *Delegate) Bind(r *Rule, f Factory) {
	d.actions[r] = func(span types.Span, st *ast.Stack) error {
		n := f()
		if err := n.Construct(span, st); err != nil {
			return err
		}
		st.Push(n)
		return nil
	}
}

// BindAction installs a raw build action for r, replacing any previous
// binding.
func (d *Delegate) BindAction(r *Rule, a Action) {
	d.actions[r] = a
}

func (d *Delegate) lookup(r *Rule) (Action, bool) {
	a, ok := d.actions[r]
	return a, ok
}
