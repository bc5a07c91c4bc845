/*
Package tss applies tree style sheets to trees.

TSS (tree style sheets) look a lot like CSS, but may style any tree whose
nodes answer to selector labels (see package selectable). A stylesheet is
parsed once and compiled into a function which is applied to the root of a
tree:

   sheet := tss.MustParse(`.a { color: red; } .a .b { color: blue; }`)
   styles, err := tss.CompileSimple(sheet, nil)
   ...
   _, err = styles.Apply(root, nil)

Stylesheets may embed script code ("<? … ?>"), either as declarations or
as selector predicates. Those have to be compiled with Compile, which
hands generated code to a script engine provided by the client.

Packages

   lexer, parser, ast   stylesheet syntax
   visit                selector matching on trees
   interp               application of script-free stylesheets
   script               code generation for scripted stylesheets
   styledtree, htmltree trees to be styled
   cssimport            import of plain CSS
   tssdbg               debugging helpers

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss'.
func tracer() tracing.Trace {
	return tracing.Select("tss")
}
