package tree

import (
	"errors"
	"testing"
)

func build() *Node[string] {
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	a.AddChild(NewNode("a1"))
	return root
}

func TestNodeChildren(t *testing.T) {
	root := build()
	if root.ChildCount() != 3 {
		t.Fatalf("expected 3 children, have %d", root.ChildCount())
	}
	labels := ""
	for _, ch := range root.Children() {
		labels += ch.Payload
	}
	if labels != "abc" {
		t.Errorf("expected children abc, have %s", labels)
	}
	b, _ := root.Child(1)
	if b.Parent() != root || root.IndexOfChild(b) != 1 {
		t.Errorf("expected b to be second child of root")
	}
	if _, ok := root.Child(3); ok {
		t.Error("expected no 4th child")
	}
}

func TestNodePosition(t *testing.T) {
	root := build()
	if p := root.Position(); p.Index != 0 || !p.Last {
		t.Errorf("expected root to be an only child, have %+v", p)
	}
	c, _ := root.Child(2)
	if p := c.Position(); p.Index != 2 || !p.Last {
		t.Errorf("expected c at index 2 and last, have %+v", p)
	}
	b, _ := root.Child(1)
	b.Isolate()
	if b.Parent() != nil || root.ChildCount() != 2 {
		t.Errorf("expected b to be isolated")
	}
	if p := c.Position(); p.Index != 1 || !p.Last {
		t.Errorf("expected c to move up, have %+v", p)
	}
}

func TestNodeWalk(t *testing.T) {
	root := build()
	visited := ""
	depths := 0
	err := root.Walk(func(n *Node[string], depth int) error {
		visited += n.Payload + " "
		depths += depth
		return nil
	})
	if err != nil || visited != "root a a1 b c " || depths != 5 {
		t.Errorf("unexpected walk %q (depths %d, err %v)", visited, depths, err)
	}
	count := 0
	err = root.Walk(func(n *Node[string], depth int) error {
		count++
		if n.Payload == "a1" {
			return ErrStopWalk
		}
		return nil
	})
	if err != nil || count != 3 {
		t.Errorf("expected walk to stop after 3 nodes, have %d (%v)", count, err)
	}
	failure := errors.New("failure")
	if err = root.Walk(func(*Node[string], int) error { return failure }); err != failure {
		t.Errorf("expected failure to propagate, have %v", err)
	}
	a1, _ := root.Children()[0].Child(0)
	if anc := a1.Ancestors(); len(anc) != 2 || anc[1] != root {
		t.Errorf("expected 2 ancestors of a1, have %v", anc)
	}
}

func TestAddChildMovesNode(t *testing.T) {
	root := build()
	a, _ := root.Child(0)
	c, _ := root.Child(2)
	c.AddChild(a)
	if a.Parent() != c || root.ChildCount() != 2 {
		t.Errorf("expected a to be moved below c")
	}
}
