package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/tss/position"
	"github.com/npillmayer/tss/selectable"
	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	typ                 string
	id                  string
	classes             []string
	props               *style.PropertyMap
	values              map[string]any // non-string values set by scripts
	schema              *Schema
}

var _ selectable.PruneableTree = &StyNode{}
var _ selectable.Styleable = &StyNode{}
var _ selectable.ScriptSelectable = &StyNode{}
var _ selectable.ScriptDeletable = &StyNode{}

// Option configures a new node.
type Option func(*StyNode)

// Classes adds classes to a node. Arguments may hold more than one class,
// separated by spaces; a leading '.' is optional.
func Classes(classes ...string) Option {
	return func(sn *StyNode) {
		for _, c := range classes {
			for _, f := range strings.Fields(c) {
				sn.classes = append(sn.classes, strings.TrimPrefix(f, "."))
			}
		}
	}
}

// ID sets the id of a node.
func ID(id string) Option {
	return func(sn *StyNode) {
		sn.id = strings.TrimPrefix(id, "#")
	}
}

// WithSchema attaches a schema to a node. Children added later inherit the
// schema, unless they have one of their own.
func WithSchema(s *Schema) Option {
	return func(sn *StyNode) {
		sn.schema = s
	}
}

// NewNode creates a new styled node of a given type.
func NewNode(typ string, opts ...Option) *StyNode {
	sn := &StyNode{
		typ:   typ,
		props: style.NewPropertyMap(),
	}
	sn.Payload = sn // Payload will always reference the node itself
	for _, opt := range opts {
		opt(sn)
	}
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Add appends children to a node and returns the node.
func (sn *StyNode) Add(children ...*StyNode) *StyNode {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		if ch.schema == nil && sn.schema != nil {
			ch.setSchema(sn.schema)
		}
		sn.AddChild(&ch.Node)
	}
	return sn
}

func (sn *StyNode) setSchema(s *Schema) {
	sn.schema = s
	for _, ch := range sn.Node.Children() {
		if Node(ch).schema == nil {
			Node(ch).setSchema(s)
		}
	}
}

// ParentNode returns the parent of a node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Type returns the type of a node.
func (sn *StyNode) Type() string {
	return sn.typ
}

// ID returns the id of a node, or "".
func (sn *StyNode) ID() string {
	return sn.id
}

// ClassList returns the classes of a node, without leading dots.
func (sn *StyNode) ClassList() []string {
	return append([]string(nil), sn.classes...)
}

// HasClass reports whether the node carries class c.
func (sn *StyNode) HasClass(c string) bool {
	c = strings.TrimPrefix(c, ".")
	for _, cl := range sn.classes {
		if cl == c {
			return true
		}
	}
	return false
}

// --- Selectable ------------------------------------------------------------

// Matches is part of interface selectable.Selectable.
func (sn *StyNode) Matches(label string) bool {
	if label == "" {
		return false
	}
	switch label[0] {
	case '.':
		return sn.HasClass(label)
	case '#':
		return sn.id != "" && label[1:] == sn.id
	case '$':
		return sn.Position().Matches(label)
	}
	return label == sn.typ
}

// Children is part of interface selectable.Tree.
func (sn *StyNode) Children() []selectable.Selectable {
	children := make([]selectable.Selectable, sn.ChildCount())
	for i, ch := range sn.Node.Children() {
		children[i] = Node(ch)
	}
	return children
}

// ChildNodes returns the children of a node.
func (sn *StyNode) ChildNodes() []*StyNode {
	children := make([]*StyNode, sn.ChildCount())
	for i, ch := range sn.Node.Children() {
		children[i] = Node(ch)
	}
	return children
}

// Position returns the position of the node among its siblings.
func (sn *StyNode) Position() position.Position {
	return sn.Node.Position()
}

// IsUniqueInPath is part of interface selectable.PruneableTree.
// Without a schema, nothing is known about uniqueness.
func (sn *StyNode) IsUniqueInPath() bool {
	return sn.schema.IsUnique(sn.typ)
}

// CanContainDescendant is part of interface selectable.PruneableTree.
// Without a schema, any descendant is possible.
func (sn *StyNode) CanContainDescendant(t string) bool {
	return sn.schema.CanContain(sn.typ, t)
}

// --- Properties ------------------------------------------------------------

// Set is part of interface selectable.Styleable. String values are stored
// as style properties, other values are kept as they are.
func (sn *StyNode) Set(key string, value any) {
	switch v := value.(type) {
	case string:
		delete(sn.values, key)
		sn.props.Set(key, style.Property(v))
	case style.Property:
		delete(sn.values, key)
		sn.props.Set(key, v)
	default:
		sn.props.Delete(key)
		if sn.values == nil {
			sn.values = make(map[string]any)
		}
		sn.values[key] = value
	}
	tracer().Debugf("%s: set %s = %v", sn.label(), key, value)
}

// Get returns the value of a property set at this node, or nil.
// String values are returned as strings.
func (sn *StyNode) Get(key string) any {
	if v, ok := sn.values[key]; ok {
		return v
	}
	if p, ok := sn.props.Property(key); ok {
		return p.String()
	}
	return nil
}

// Delete removes a property from this node.
func (sn *StyNode) Delete(key string) {
	delete(sn.values, key)
	sn.props.Delete(key)
}

// ScriptAccessor is part of interface selectable.ScriptSelectable. Scripts
// get full access to the node's properties.
func (sn *StyNode) ScriptAccessor() selectable.ScriptReadable {
	return sn
}

// Styles returns the string-valued properties set at this node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.props
}

// Computed returns the value of a property for this node. Properties set to
// "inherit", and inherited properties which are not set, cascade to the
// parent. Unset properties which are not inherited yield the user-agent
// default for the node's type.
func (sn *StyNode) Computed(key string) style.Property {
	for n := sn; n != nil; n = n.ParentNode() {
		p, ok := n.props.Property(key)
		switch {
		case ok && p.IsInitial():
			return style.DefaultProperty(n.typ, key)
		case ok && !p.IsInherit():
			return p
		case !ok && !style.IsCascading(key):
			return style.DefaultProperty(n.typ, key)
		}
		tracer().P("key", key).Debugf("cascading from %s", n.label())
	}
	return style.NullStyle
}

// Dimen returns the computed value of a property as a dimension.
func (sn *StyNode) Dimen(key string) (style.DimenT, error) {
	return sn.Computed(key).Dimen()
}

// --- Output ----------------------------------------------------------------

func (sn *StyNode) label() string {
	var b strings.Builder
	b.WriteString(sn.typ)
	for _, c := range sn.classes {
		b.WriteString("." + c)
	}
	if sn.id != "" {
		b.WriteString("#" + sn.id)
	}
	return b.String()
}

// String dumps the subtree at sn, with values, in a stylesheet-like format.
func (sn *StyNode) String() string {
	var b strings.Builder
	sn.dump(&b, "")
	return b.String()
}

func (sn *StyNode) dump(b *strings.Builder, indent string) {
	b.WriteString(indent + sn.label() + " {")
	lines := make([]string, 0, len(sn.values))
	for _, kv := range sn.props.Properties() {
		lines = append(lines, fmt.Sprintf("%s: %s;", kv.Key, kv.Value))
	}
	keys := make([]string, 0, len(sn.values))
	for k := range sn.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v;", k, sn.values[k]))
	}
	for _, l := range lines {
		b.WriteString("\n  " + indent + l)
	}
	if len(lines) > 0 {
		b.WriteString("\n" + indent + "}")
	} else {
		b.WriteString(" }")
	}
	if sn.ChildCount() == 0 {
		return
	}
	b.WriteString("\n" + indent + "{")
	for _, ch := range sn.ChildNodes() {
		b.WriteString("\n")
		ch.dump(b, indent+"  ")
	}
	b.WriteString("\n" + indent + "}")
}
