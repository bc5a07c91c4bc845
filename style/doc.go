/*
Package style holds property values assigned by TSS stylesheets.

TSS assignments carry raw strings ("margin-top: 10pt;"). Type Property wraps
these strings and offers conversions to dimensions, percentages and colors,
for hosts which want typed access. PropertyMap is a container for
properties, segmented into groups of related properties, which host trees
may use to store styles.

Status

Conversions cover the units and colors commonly found in stylesheets;
relative units (em, ex, vw, …) are recognized but not resolved.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tss.style'.
func tracer() tracing.Trace {
	return tracing.Select("tss.style")
}
