package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSyntax    ErrKind = iota // input did not match the grammar
	ErrKindStructure                // stack/slot protocol violation during construction
	ErrKindType                     // result does not downcast to the requested node type
	ErrKindState                    // invalid operation for current state (e.g., rule unset)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindSyntax:
		return "syntax"
	case ErrKindStructure:
		return "structure"
	case ErrKindType:
		return "type"
	case ErrKindState:
		return "state"
	}
	return "unknown"
}

// Error is a typed error with a position and an optional underlying cause.
type Error struct {
	Kind ErrKind
	Pos  Pos
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Pos.Line > 0 {
		msg = fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// -----------------------------------------------------------------------------
// ErrorList (the recognizer's failure record)
// -----------------------------------------------------------------------------

// ErrorList is an appendable ordered list of recognition failures. The
// recognition engine appends to it; the construction core only threads it
// through.
type ErrorList struct {
	errs []*Error
}

// Add appends an error to the list.
func (l *ErrorList) Add(e *Error) {
	l.errs = append(l.errs, e)
}

// Addf appends a formatted error of the given kind at pos.
func (l *ErrorList) Addf(kind ErrKind, pos Pos, format string, args ...any) {
	l.Add(&Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Len returns the number of recorded errors.
func (l *ErrorList) Len() int { return len(l.errs) }

// All returns the recorded errors in append order.
func (l *ErrorList) All() []*Error { return l.errs }

// Err returns the first recorded error, or nil when the list is empty.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l.errs[0]
}

func (l *ErrorList) String() string {
	var b strings.Builder
	for i, e := range l.errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
