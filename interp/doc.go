/*
Package interp applies script-free stylesheets to host trees.

Stylesheets without script content do not need a script engine. Compile
checks for script content and returns a Stylesheet which walks the
declarations directly: an assignment sets a property on the current node,
a style declaration visits all nodes matched by its selector and applies
its nested statements to each of them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.interp'.
func tracer() tracing.Trace {
	return tracing.Select("tss.interp")
}

// ErrScriptContent is returned if a stylesheet needs a script engine.
var ErrScriptContent = errors.New("stylesheet contains scripts")
