package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/pegkit/pkg/types"
)

// brancher is satisfied by Container; nodes outside the Container base
// can implement it to expose children to Walk and the printers.
type brancher interface {
	Children() []Node
}

// Walk visits n and its descendants in depth-first pre-order, calling fn
// with each node and its depth. Returning false from fn prunes the
// node's subtree.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(n Node, depth int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if b, ok := n.(brancher); ok {
		for _, c := range b.Children() {
			walk(c, depth+1, fn)
		}
	}
}

// PrintOptions configures Fprint.
type PrintOptions struct {
	// ShowSpans prints each node's line:column range.
	ShowSpans bool

	// MaxTextLen truncates the quoted source text per node. Zero
	// suppresses the text entirely.
	MaxTextLen int

	// IndentSize is the number of spaces per tree level.
	IndentSize int
}

// DefaultPrintOptions returns the options used by the CLI's text output.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{ShowSpans: true, MaxTextLen: 40, IndentSize: 2}
}

// Fprint writes an indented text rendering of the tree rooted at n. src
// must be the source the tree was parsed from; it supplies the quoted
// text snippets.
func Fprint(w io.Writer, n Node, src string, opts PrintOptions) error {
	var err error
	Walk(n, func(n Node, depth int) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat(" ", depth*opts.IndentSize)
		line := indent + n.Kind().Name()
		if opts.ShowSpans {
			line += " [" + n.Span().String() + "]"
		}
		if opts.MaxTextLen > 0 {
			line += " " + snippet(n.Span(), src, opts.MaxTextLen)
		}
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}

func snippet(span types.Span, src string, max int) string {
	text := span.Text(src)
	if len(text) > max {
		text = text[:max] + "..."
	}
	return fmt.Sprintf("%q", text)
}

// TreeJSON is the JSON shape of a parsed tree, one object per node.
type TreeJSON struct {
	Kind     string     `json:"kind"`
	Span     string     `json:"span"`
	Text     string     `json:"text,omitempty"`
	Children []TreeJSON `json:"children,omitempty"`
}

// MarshalTree converts the tree rooted at n into its TreeJSON shape.
// Leaf nodes carry their matched text; containers carry children only.
func MarshalTree(n Node, src string) TreeJSON {
	out := TreeJSON{
		Kind: n.Kind().Name(),
		Span: n.Span().String(),
	}
	if b, ok := n.(brancher); ok {
		for _, c := range b.Children() {
			out.Children = append(out.Children, MarshalTree(c, src))
		}
	}
	if len(out.Children) == 0 {
		out.Text = n.Span().Text(src)
	}
	return out
}
