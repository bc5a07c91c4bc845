/*
Package parser builds stylesheet ASTs from TSS text.

Grammar

The parser is a plain recursive descent parser over the tokens produced by
package lexer. Whitespace tokens are significant in selectors only:

   stylesheet    = { declaration }
   declaration   = script | style
   style         = or-selector "{" { statement } "}"
   statement     = script | assignment | style          (nested style)
   assignment    = ident ":" value { value } ";"
   or-selector   = containment { "," containment }
   containment   = and { WS and }
   and           = not { ["^"] not }
   not           = ["!"] atom
   atom          = "*" | "&" | ident | script | callback

Nested style declarations are anchored to the node matched by the
enclosing rule: if the first part of a nested selector does not contain a
context anchor '&', one is prepended.

All errors are reported as *FormatError.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.parser'.
func tracer() tracing.Trace {
	return tracing.Select("tss.parser")
}
