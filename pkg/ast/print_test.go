package ast

import (
	"strings"
	"testing"
)

// buildTriple assembles a populated triple over "1 w 2 3" without going
// through the stack protocol.
func buildTriple() *triple {
	n := newTriple()
	n.SetSpan(spanAt(0, 7))
	n.A.Set(newNum(0, 1))
	n.B.Set(newWord(2, 3))
	n.C.Append(newNum(4, 5))
	n.C.Append(newNum(6, 7))
	return n
}

func TestChildren(t *testing.T) {
	n := buildTriple()
	kids := n.Children()
	if len(kids) != 4 {
		t.Fatalf("Children returned %d nodes, want 4", len(kids))
	}
	wantKinds := []*Kind{numKind, wordKind, numKind, numKind}
	for i, k := range kids {
		if k.Kind() != wantKinds[i] {
			t.Errorf("child %d has kind %s, want %s", i, k.Kind().Name(), wantKinds[i].Name())
		}
	}
}

func TestChildrenSkipsEmptySlots(t *testing.T) {
	n := newTriple()
	n.A.Set(newNum(0, 1))
	kids := n.Children()
	if len(kids) != 1 {
		t.Fatalf("Children returned %d nodes, want 1", len(kids))
	}
}

func TestWalkOrderAndDepth(t *testing.T) {
	n := buildTriple()
	var names []string
	var depths []int
	Walk(n, func(v Node, depth int) bool {
		names = append(names, v.Kind().Name())
		depths = append(depths, depth)
		return true
	})
	wantNames := []string{"container", "num", "word", "num", "num"}
	wantDepths := []int{0, 1, 1, 1, 1}
	for i := range wantNames {
		if i >= len(names) || names[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Fatalf("walk = %v at %v, want %v at %v", names, depths, wantNames, wantDepths)
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	n := buildTriple()
	count := 0
	Walk(n, func(v Node, depth int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("pruned walk visited %d nodes, want 1", count)
	}
}

func TestFprint(t *testing.T) {
	src := "1 w 2 3"
	n := buildTriple()

	var b strings.Builder
	if err := Fprint(&b, n, src, DefaultPrintOptions()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Fprint produced %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "container") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  num") || !strings.Contains(lines[1], `"1"`) {
		t.Errorf("first child line = %q", lines[1])
	}
	if !strings.Contains(lines[2], `"w"`) {
		t.Errorf("word line = %q", lines[2])
	}
}

func TestFprintTruncatesText(t *testing.T) {
	src := "123456789"
	n := newNum(0, 9)
	var b strings.Builder
	opts := PrintOptions{MaxTextLen: 4, IndentSize: 2}
	if err := Fprint(&b, n, src, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"1234..."`) {
		t.Errorf("output = %q", b.String())
	}
}

func TestMarshalTree(t *testing.T) {
	src := "1 w 2 3"
	n := buildTriple()

	tree := MarshalTree(n, src)
	if tree.Kind != "container" {
		t.Errorf("root kind = %q", tree.Kind)
	}
	if tree.Text != "" {
		t.Errorf("container should carry no text, got %q", tree.Text)
	}
	if len(tree.Children) != 4 {
		t.Fatalf("root has %d children, want 4", len(tree.Children))
	}
	if tree.Children[0].Text != "1" || tree.Children[1].Text != "w" {
		t.Errorf("leaf texts = %q, %q", tree.Children[0].Text, tree.Children[1].Text)
	}
}
