/*
Package cssimport reads plain CSS into TSS stylesheets.

CSS is parsed with douceur. Qualified rules whose selectors use only type,
class, id and universal selectors together with descendant combinators
translate directly into TSS style declarations. Every other selector is
rejected with ErrUnsupportedSelector. At-rules (@media, @import, …) are
skipped.

Stylesheets embedded in HTML documents are found by ExtractStyleElements,
which looks for <style> elements in <head> and <body>.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssimport

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.cssimport'.
func tracer() tracing.Trace {
	return tracing.Select("tss.cssimport")
}

// ErrUnsupportedSelector is returned for CSS selectors without a TSS
// counterpart, e.g. child combinators or pseudo-classes.
var ErrUnsupportedSelector = errors.New("unsupported CSS selector")
