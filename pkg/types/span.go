package types

import "fmt"

// Pos is a position in a parsed input. Offset is the byte offset from the
// start of the input; Line and Column are 1-based and refer to the line
// containing the offset.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p precedes q in the input.
func (p Pos) Before(q Pos) bool { return p.Offset < q.Offset }

// Span is the half-open input range [Begin, End) matched by a grammar rule.
// It is stored on every AST node and handed to the node's construct hook.
type Span struct {
	Begin Pos
	End   Pos
}

// Text returns the matched substring of src. The span must have been
// produced over the same input.
func (s Span) Text(src string) string {
	if s.Begin.Offset < 0 || s.End.Offset > len(src) || s.Begin.Offset > s.End.Offset {
		return ""
	}
	return src[s.Begin.Offset:s.End.Offset]
}

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End.Offset - s.Begin.Offset }

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Begin, s.End)
}
