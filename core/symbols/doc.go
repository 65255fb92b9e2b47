/*
Package symbols holds the table of symbols known to the math engine.

Every symbol is known by its name (a control sequence like `\alpha` or a
literal character like `+`) in either math mode or text mode. An entry tells
the font the symbol lives in, its atom group (ord, bin, rel, …) and,
optionally, the character which replaces the name when rendering.

The package additionally holds the tables relating Unicode combining accents
to accent commands, and precomposed characters to their decomposition.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbols

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tymath.symbols'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.symbols")
}
