/*
Package htmltree lets TSS stylesheets style HTML parse trees.

Node wraps an html.Node of golang.org/x/net/html. Element nodes are
selectable; text, comment and doctype nodes are not part of the tree as
seen by selectors. Labels are matched as follows:

   tag        element name, case-insensitive
   .class     the element's class attribute contains class
   #id        the element's id attribute equals id
   @attr      the element has attribute attr
   $cond      position among sibling elements (see package position)

Assignments are written to the inline style attribute of an element,
i.e. "color: red;" applied to <p> yields <p style="color: red">.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.htmltree'.
func tracer() tracing.Trace {
	return tracing.Select("tss.htmltree")
}
