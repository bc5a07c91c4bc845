package htmltree

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/tss/position"
	"github.com/npillmayer/tss/selectable"
	"github.com/npillmayer/tss/style"
	"golang.org/x/net/html"
)

// Node is a selectable view of an HTML node. Nodes are values; two Nodes
// are equal if they wrap the same html.Node.
type Node struct {
	h *html.Node
}

var _ selectable.Tree = Node{}
var _ selectable.Styleable = Node{}
var _ selectable.ScriptSelectable = Node{}
var _ selectable.ScriptDeletable = Node{}

// Wrap creates a selectable view of an HTML node.
func Wrap(h *html.Node) Node {
	return Node{h: h}
}

// Parse parses an HTML document and returns its document node.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Node{}, err
	}
	return Wrap(doc), nil
}

// AsSelectable resolves *html.Node and Node values to selectable nodes.
// It may be passed to interp.Compile and script.Compile.
func AsSelectable(item any) selectable.Selectable {
	switch n := item.(type) {
	case Node:
		if n.h != nil {
			return n
		}
	case *html.Node:
		if n != nil {
			return Wrap(n)
		}
	}
	return nil
}

// HTML returns the wrapped HTML node.
func (n Node) HTML() *html.Node {
	return n.h
}

func (n Node) isElement() bool {
	return n.h != nil && n.h.Type == html.ElementNode
}

// Matches is part of interface selectable.Selectable.
func (n Node) Matches(label string) bool {
	if !n.isElement() || label == "" {
		return false
	}
	switch label[0] {
	case '.':
		classes, _ := n.attr("class")
		for _, c := range strings.Fields(classes) {
			if c == label[1:] {
				return true
			}
		}
		return false
	case '#':
		id, ok := n.attr("id")
		return ok && id == label[1:]
	case '@':
		_, ok := n.attr(label[1:])
		return ok
	case '$':
		return n.Position().Matches(label)
	}
	return strings.EqualFold(label, n.h.Data)
}

// Children is part of interface selectable.Tree. Only element children are
// returned.
func (n Node) Children() []selectable.Selectable {
	var children []selectable.Selectable
	if n.h == nil {
		return children
	}
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, Node{c})
		}
	}
	return children
}

// Position returns the position of an element among its sibling elements.
func (n Node) Position() position.Position {
	if n.h == nil || n.h.Parent == nil {
		return position.Single
	}
	index, last := 0, true
	for c := n.h.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c == n.h {
			last = true
			for s := c.NextSibling; s != nil; s = s.NextSibling {
				if s.Type == html.ElementNode {
					last = false
					break
				}
			}
			break
		}
		index++
	}
	return position.Position{Index: index, Last: last}
}

func (n Node) attr(key string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func (n Node) setAttr(key, value string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr[i].Val = value
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: key, Val: value})
}

func (n Node) removeAttr(key string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr = append(n.h.Attr[:i], n.h.Attr[i+1:]...)
			return
		}
	}
}

// --- Inline styles ---------------------------------------------------------

// Styles returns the properties of the inline style attribute, in order.
func (n Node) Styles() []style.KeyValue {
	if !n.isElement() {
		return nil
	}
	text, ok := n.attr("style")
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	// douceur drops a final declaration without a terminating ';'
	text = strings.TrimRight(strings.TrimSpace(text), ";") + ";"
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Infof("ignoring malformed style attribute of <%s>: %v", n.h.Data, err)
		return nil
	}
	kv := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		kv = append(kv, style.KeyValue{Key: d.Property, Value: style.Property(d.Value)})
	}
	return kv
}

func (n Node) writeStyles(kv []style.KeyValue) {
	if len(kv) == 0 {
		n.removeAttr("style")
		return
	}
	parts := make([]string, len(kv))
	for i, p := range kv {
		parts[i] = p.Key + ": " + p.Value.String()
	}
	n.setAttr("style", strings.Join(parts, "; "))
}

// Set is part of interface selectable.Styleable. It sets a property of the
// inline style attribute; non-string values are formatted with fmt.
func (n Node) Set(key string, value any) {
	if !n.isElement() {
		return
	}
	v := fmt.Sprint(value)
	kv := n.Styles()
	for i := range kv {
		if kv[i].Key == key {
			kv[i].Value = style.Property(v)
			n.writeStyles(kv)
			return
		}
	}
	n.writeStyles(append(kv, style.KeyValue{Key: key, Value: style.Property(v)}))
}

// Get returns an inline style property as a string, or nil.
func (n Node) Get(key string) any {
	for _, p := range n.Styles() {
		if p.Key == key {
			return p.Value.String()
		}
	}
	return nil
}

// Delete removes a property from the inline style attribute.
func (n Node) Delete(key string) {
	kv := n.Styles()
	for i := range kv {
		if kv[i].Key == key {
			n.writeStyles(append(kv[:i], kv[i+1:]...))
			return
		}
	}
}

// Computed returns an inline style property, falling back to the
// user-agent default for the element.
func (n Node) Computed(key string) style.Property {
	if v, ok := n.Get(key).(string); ok {
		return style.Property(v)
	}
	if !n.isElement() {
		return style.NullStyle
	}
	return style.DefaultProperty(n.h.Data, key)
}

// ScriptAccessor is part of interface selectable.ScriptSelectable.
func (n Node) ScriptAccessor() selectable.ScriptReadable {
	return n
}

func (n Node) String() string {
	if n.h == nil {
		return "<nil>"
	}
	switch n.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return "<" + n.h.Data + ">"
	}
	return fmt.Sprintf("#node(%d)", n.h.Type)
}
