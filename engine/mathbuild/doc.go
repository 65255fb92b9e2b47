/*
Package mathbuild builds render trees from math parse trees.

It contains the box builder, i.e. a registry of builders for each kind of
parse node, and the expression assembler, which turns a list of built boxes
into a correctly spaced horizontal list. The assembler runs three passes over
an expression: binary operators in unary position are turned into ordinary
atoms, glue is inserted between atoms according to the TeX spacing tables,
and finally BuildHTML cuts the list into unbreakable chunks.

Builders operate on an Environment, which bundles the symbol table, the font
metric tables and the builder registry. Environments are immutable once
created and may be shared between goroutines. Options are immutable as well,
so a build call is a pure function of its parse tree and its options.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathbuild

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tymath.build'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.build")
}
