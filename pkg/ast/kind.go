package ast

// Kind is a process-wide unique identity tag for a concrete node type.
// Tags compare by pointer identity, never by name, so two independently
// registered kinds are always distinct. Kinds form a single-rooted
// hierarchy; Is walks the full ancestor chain, so a grandchild kind is
// recognized as an instance of its grandparent.
//
// Kind exists for callers that need downcasting without Go's type
// assertions (e.g., dynamic tooling over an open node set). For static
// code, As and Isa are the preferred path.
type Kind struct {
	name  string
	super *Kind
}

// NodeKind is the root of the kind hierarchy. Every registered kind
// descends from it.
var NodeKind = &Kind{name: "node"}

// ContainerKind is the kind shared by all container nodes that do not
// register a more specific one.
var ContainerKind = NewKind("container", NodeKind)

// NewKind registers a new node kind with the given name and superkind.
// A nil super defaults to NodeKind. Call once per concrete node type,
// typically from a package-level var.
func NewKind(name string, super *Kind) *Kind {
	if super == nil {
		super = NodeKind
	}
	return &Kind{name: name, super: super}
}

// Name returns the kind's registered name.
func (k *Kind) Name() string { return k.name }

// Super returns the parent kind, or nil for NodeKind.
func (k *Kind) Super() *Kind { return k.super }

// Is reports whether k is ancestor, or descends from it through any
// number of levels.
func (k *Kind) Is(ancestor *Kind) bool {
	for c := k; c != nil; c = c.super {
		if c == ancestor {
			return true
		}
	}
	return false
}

// Isa reports whether n's dynamic type is T. It is the static-type
// counterpart of Kind comparison and follows Go assertion semantics:
// interface targets match any implementation, concrete targets match
// exactly.
func Isa[T Node](n Node) bool {
	_, ok := n.(T)
	return ok
}

// As returns n reinterpreted as T when its dynamic type allows it.
// The second result reports whether the downcast held.
func As[T Node](n Node) (T, bool) {
	v, ok := n.(T)
	return v, ok
}
