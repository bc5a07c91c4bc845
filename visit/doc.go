/*
Package visit matches selectors against host trees.

A single depth-first traversal evaluates all lines (containment selectors)
of an or-selector at once. For every line the traversal keeps a cursor into
the line's chain of and-selectors; cursors live in a position vector which
is cloned for every child, so sibling subtrees never share state.

A line whose cursor reached the last and-selector is terminal: every
further node matching the last and-selector is reported, at any depth.
Lines which can provably never match again in a subtree are pruned, and a
subtree is skipped entirely once all lines are pruned. Hosts implementing
selectable.PruneableTree enable additional pruning based on node types.
Pruning never changes the set or order of reported nodes.

Callbacks are called in document order (pre-order), at most once per node
and selector.

Concurrency

Traversals are synchronous. An Engine may be used for concurrent traversals
only if its SelectorCache is safe for concurrent use; the default cache is
not.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package visit

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.visit'.
func tracer() tracing.Trace {
	return tracing.Select("tss.visit")
}

// ErrScriptSelector is returned when a traversal reaches a script selector.
// Script selectors have to be replaced by callback selectors before
// matching (the script compiler does this).
var ErrScriptSelector = errors.New("script selector cannot be matched directly")

// ErrNoPredicates is returned when a traversal reaches a callback selector
// and no predicate table has been supplied.
var ErrNoPredicates = errors.New("callback selector without predicate table")

// ErrIncomparableRoot is returned when the root of a traversal is of a type
// which cannot be compared with ==, as required by the context selector.
var ErrIncomparableRoot = errors.New("root of traversal is not comparable")
