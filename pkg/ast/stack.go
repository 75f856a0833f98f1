package ast

// Stack is the shared, mutable sequence of owned node handles used to
// communicate matched sub-results up through nested rule matches. Rules
// push their synthesized nodes bottom-up; containers pop their children
// back off during construction.
//
// Ownership of every node on the stack is exclusive: popping transfers
// ownership to the popper, and a node must never appear on the stack more
// than once. The stack is not synchronized; exactly one parse drives it
// at a time.
type Stack struct {
	nodes []Node
}

// Push appends n as the new top of the stack.
func (s *Stack) Push(n Node) {
	s.nodes = append(s.nodes, n)
}

// Top returns the node at the top of the stack without removing it.
func (s *Stack) Top() (Node, bool) {
	if len(s.nodes) == 0 {
		return nil, false
	}
	return s.nodes[len(s.nodes)-1], true
}

// Pop removes and returns the node at the top of the stack, transferring
// ownership to the caller.
func (s *Stack) Pop() (Node, bool) {
	if len(s.nodes) == 0 {
		return nil, false
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n, true
}

// Len returns the number of nodes currently on the stack.
func (s *Stack) Len() int { return len(s.nodes) }

// Drain removes and returns all nodes, bottom first. Used by the parse
// entry point to dispose of a malformed stack in one place.
func (s *Stack) Drain() []Node {
	out := s.nodes
	s.nodes = nil
	return out
}
