/*
Package styledtree is a straightforward default implementation of a host
tree for TSS stylesheets.

Overview

A StyNode has a type, a set of classes, an optional id and a set of
property values. It implements all capabilities of package selectable,
so it may be matched, styled and handed to scripts. Labels are matched
as follows:

   label      matches if …
   ----------+--------------------------------------------------
   type       the node's type equals label (letter-led labels)
   .class     the node carries the class
   #id        the node's id equals id
   $cond      the node's position among its siblings satisfies cond
              (see package position)

An optional Schema supplies structural knowledge about types: which types
occur at most once on any path and which types may be nested into which.
Nodes with a schema implement selectable.PruneableTree, which lets the
matching engine skip subtrees.

Property values set from stylesheet assignments are strings and are kept
in a style.PropertyMap; values of other types (set by scripts) are kept
aside. Reading cascades for inherited properties (see StyNode.Computed).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("tss.styledtree")
}
