/*
Package script compiles stylesheets with script content to JavaScript.

TSS stylesheets may embed JavaScript: script declarations "<? … ?>" and
script predicates in selectors. This package does not contain a JavaScript
engine. Clients supply one through two small interfaces, Evaluator and
Invoker, which are easy to implement for embedded engines such as goja or
otto.

Compilation produces a single JavaScript function expression. The code
starts with a prelude of helper functions; then every declaration of the
stylesheet becomes one statement:

   key: value;                 __set__(__root__, "key", "value");
   <? code ?>                  code
   rule without scripts        __rule__(__root__, '2');
   rule with scripts           __visit__(__root__, "sel", function (__root__) {…}, [preds…]);

Rules without scripts are not translated. They are referenced by their
path in the stylesheet ('2', '2.1', …) and applied by Go code, calling back
through the injected Services object. Script predicates are replaced by
callback selectors <{n}>, where n indexes the list of predicate functions
passed to __visit__.

Scripts see host nodes through proxies. Property reads go to Get, writes
to Set and deletes to Delete of the node's script accessor, as far as the
accessor's privilege allows (see selectable.Privilege).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.script'.
func tracer() tracing.Trace {
	return tracing.Select("tss.script")
}

// ErrInvalidRulePath is returned by Services.VisitRule for paths which do
// not denote a statement of the stylesheet.
var ErrInvalidRulePath = errors.New("invalid rule path")

// ErrNoEvaluator is returned by Compile for stylesheets with scripts if no
// Evaluator has been supplied.
var ErrNoEvaluator = errors.New("stylesheet contains scripts, but no evaluator given")
