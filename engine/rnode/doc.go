/*
Package rnode defines the render nodes produced by the math layout engine.

A render tree is made of boxes. Each box carries a set of classes (its atom
class like "mord" or "mbin", markers like "mspace" or "nobreak", sizing
classes), a style record with explicit dimensions, and its vertical extent:
height above and depth below the baseline, in em, plus the maximum font
size multiplier found inside.

Containers (Span, PathSpan, Fragment) derive their extent from their
children whenever children are attached. Symbols are leaves holding text of
a single font. PathHolders are leaves holding vector paths.

A Fragment is a transient container: it groups boxes produced by a partial
group (e.g. a color change) and is dissolved into the enclosing expression
by the expression builder. Fragments never appear in a finished tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rnode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tymath.rnode'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.rnode")
}
