/*
Package ast defines the object model of TSS stylesheets.

Selectors

A selector is made of four layers, each holding a non-empty list of
elements of the next layer:

   OrSelector            a, b           any of its containment selectors
   ContainmentSelector   a b            descendant chain of and-selectors
   AndSelector           a^b, .x#y      all element selectors on one node
   ElementSelector       'a', *, &, !a, <?…?>, <{N}>

All AST nodes are immutable after construction. Constructors check the
structural invariants (non-empty layers, valid negations), so they hold for
programmatically built trees as well as for parsed ones.

Every selector serializes back to TSS syntax; parsing the serialized form
results in an equivalent selector.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.ast'.
func tracer() tracing.Trace {
	return tracing.Select("tss.ast")
}

// ErrEmptySelector is returned when constructing a selector layer without
// children.
var ErrEmptySelector = errors.New("selector must contain at least one child")

// ErrInvalidNegation is returned when negating a negation, a wildcard or a
// context selector.
var ErrInvalidNegation = errors.New("invalid selector negation")

// ErrMisplacedContext is returned for a context selector '&' in any but the
// first and-selector of a containment chain.
var ErrMisplacedContext = errors.New("context selector must start a containment chain")
