package peg

// event records one successful rule match. Events are appended when a
// rule completes and truncated when an enclosing expression backtracks,
// so after a successful parse the surviving events are exactly the
// matches that contributed to the result, in completion order
// (children before parents, siblings left to right). That order is the
// push order the AST construction protocol depends on.
type event struct {
	rule       *Rule
	begin, end int
}

// matcher holds the state of one recognition run.
type matcher struct {
	in     *Input
	pos    int
	ws     *Rule
	token  int // >0 inside Token: whitespace is significant
	silent int // >0 inside predicates or whitespace: no failure recording

	events []event

	// furthest-failure tracking for diagnostics
	failPos  int
	expected []string
}

func newMatcher(in *Input, ws *Rule) *matcher {
	return &matcher{in: in, ws: ws, failPos: -1}
}

// rest returns the unconsumed tail of the input.
func (m *matcher) rest() string { return m.in.src[m.pos:] }

// skipWS advances past whitespace using the grammar's whitespace rule.
// It is a no-op inside Token expressions and while matching whitespace
// itself (the token counter guards both). It still runs inside And/Not,
// so a predicate matches its body exactly as the guarded expression
// would. Whitespace matches contribute no events and no diagnostics.
func (m *matcher) skipWS() {
	if m.ws == nil || m.ws.body == nil || m.token > 0 {
		return
	}
	mark := len(m.events)
	m.token++
	m.silent++
	m.ws.body.match(m)
	m.silent--
	m.token--
	m.events = m.events[:mark]
}

// failAt records a terminal failure for the "expected X" diagnostic,
// keeping only the failures at the furthest position reached.
func (m *matcher) failAt(pos int, desc string) {
	if m.silent > 0 {
		return
	}
	if pos > m.failPos {
		m.failPos = pos
		m.expected = m.expected[:0]
	}
	if pos == m.failPos {
		for _, e := range m.expected {
			if e == desc {
				return
			}
		}
		m.expected = append(m.expected, desc)
	}
}
