/*
Package selectable defines the capabilities a host tree has to expose to be
styled by TSS stylesheets.

Every node has to answer a membership test (Selectable). Additional
capabilities are discovered by type assertion:

   Tree              ordered children; needed for traversal
   PruneableTree     structural hints; lets the matcher skip subtrees
   Styleable         target of assignments "key: value;"
   ScriptSelectable  exposes an accessor object to generated scripts
   ScriptReadable    …Writable, …Deletable: property access for scripts

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selectable

// Selectable is the minimum contract of a node: a test whether the node is
// a member of a class, has a type, matches a condition, etc. The meaning of
// labels is up to the host.
type Selectable interface {
	Matches(label string) bool
}

// Tree is a node with an ordered sequence of children.
type Tree interface {
	Selectable
	Children() []Selectable
}

// PruneableTree is a tree node which supplies structural hints.
//
// IsUniqueInPath reports that no ancestor or descendant of the node shares
// its type. CanContainDescendant reports whether a node matching type label
// t may occur anywhere below this node. Hints have to be conservative:
// answering IsUniqueInPath()=false and CanContainDescendant(…)=true is
// always correct.
type PruneableTree interface {
	Tree
	IsUniqueInPath() bool
	CanContainDescendant(t string) bool
}

// Styleable is a node which accepts property assignments.
type Styleable interface {
	Selectable
	Set(key string, value any)
}

// ScriptSelectable is a node which hands out an accessor object to scripts.
type ScriptSelectable interface {
	Selectable
	ScriptAccessor() ScriptReadable
}

// ScriptReadable grants read access to properties.
type ScriptReadable interface {
	Get(key string) any
}

// ScriptWritable grants read and write access to properties.
type ScriptWritable interface {
	ScriptReadable
	Set(key string, value any)
}

// ScriptDeletable grants full access to properties.
type ScriptDeletable interface {
	ScriptWritable
	Delete(key string)
}

// Privilege is the level of property access a script has on a value.
type Privilege int

// Privilege tiers, ordered by increasing rights.
const (
	NoAccess Privilege = iota
	Read
	Write
	Delete
)

func (p Privilege) String() string {
	switch p {
	case NoAccess:
		return "no-access"
	case Read:
		return "read"
	case Write:
		return "write"
	case Delete:
		return "delete"
	}
	return "invalid-privilege"
}

// PrivilegeOf derives the privilege tier of a value from the script
// capabilities it implements.
func PrivilegeOf(item any) Privilege {
	switch item.(type) {
	case ScriptDeletable:
		return Delete
	case ScriptWritable:
		return Write
	case ScriptReadable:
		return Read
	}
	return NoAccess
}
