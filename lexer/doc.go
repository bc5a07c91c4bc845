/*
Package lexer splits TSS stylesheet text into tokens.

Tokens

TSS looks a lot like CSS, but the token set is much smaller:

   ident       bare words (letters, digits and _-@%/<>=.#$) or quoted strings
   <?…?>       script text, captured verbatim
   <{N}>       reference to an indexed callback predicate
   { } : ; * ! ^ , &

Whitespace runs are kept as explicit tokens, as the parser needs them to tell
descendant combinators from conjunctions. Block comments are dropped.

Characters '.', '#' and '$' start a new identifier even without whitespace,
so ".note#intro" results in two adjacent identifiers ".note" and "#intro".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("tss.lexer")
}
