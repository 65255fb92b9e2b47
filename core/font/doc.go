/*
Package font resolves character metrics for the math layout engine.

Math layout needs, for every glyph it places, the glyph's height above the
baseline, its depth below the baseline, its width, its italic correction and
its skew (for accent placement), all measured in em. This package holds these
values in metric tables, one table per named font (e.g. "Main-Regular" or
"Math-Italic"), and resolves lookups of (character, font, mode) against them.

A lookup for a font without any table is an error. A lookup for a character
missing from an existing table is not: characters from Latin-1 and Cyrillic
are approximated by similar Latin letters, and in text mode characters of
supported scripts fall back to the metrics of the letter 'M'. If all of this
fails, the lookup returns no metrics and the caller decides how to degrade.

Metric tables may be derived from the Go font family (the default, always
available), loaded from JSON data in KaTeX's metric format, or extracted
from fonts installed on the system.

The package additionally holds the global font parameters of TeX's math
fonts (the "sigmas"), which depend on the size class of the current style.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tymath.font'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.font")
}
