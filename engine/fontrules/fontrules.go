/*
Package fontrules decides which font and which font classes a symbol is
typeset in.

The decision depends on the symbol, its mode, the node kind it comes from
(math ordinary vs. text ordinary vs. other atoms) and the font settings of
the current options. Rules are applied in a fixed order; the first rule that
yields a font having the glyph wins.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontrules

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// tracer traces with key 'tymath.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.fonts")
}

// FontChoice is the result of font selection: a font with a metric table
// and the font classes to attach to the symbol.
type FontChoice struct {
	FontName string
	Classes  []rnode.Class
}

func choice(fontName string, classes ...rnode.Class) FontChoice {
	return FontChoice{FontName: fontName, Classes: classes}
}

// GlyphChecker tells if a font has metrics for a symbol, after applying the
// symbol's replacement.
type GlyphChecker interface {
	HasGlyph(value string, fontName string, mode symbols.Mode) bool
}

// MathItLetters are symbols always set in Main-Italic.
var MathItLetters = map[string]bool{
	"\\imath": true, "ı": true,
	"\\jmath": true, "ȷ": true,
	"\\pounds": true, "\\mathsterling": true, "\\textsterling": true, "£": true,
}

// FontMapEntry describes a math font family.
type FontMapEntry struct {
	Variant  string
	FontName string
}

// FontMap maps math font families to fonts.
var FontMap = map[string]FontMapEntry{
	"mathbf":   {"bold", "Main-Bold"},
	"mathrm":   {"normal", "Main-Regular"},
	"textit":   {"italic", "Main-Italic"},
	"mathit":   {"italic", "Main-Italic"},
	"mathbb":   {"double-struck", "AMS-Regular"},
	"mathcal":  {"script", "Caligraphic-Regular"},
	"mathfrak": {"fraktur", "Fraktur-Regular"},
	"mathscr":  {"script", "Script-Regular"},
	"mathsf":   {"sans-serif", "SansSerif-Regular"},
	"mathtt":   {"monospace", "Typewriter-Regular"},
}

func startsWithDigit(value string) bool {
	for _, r := range value {
		return r >= '0' && r <= '9'
	}
	return false
}

// MathDefault is the font of math ordinaries without a font setting: digits
// and the Main-Italic letters use Main-Italic, everything else Math-Italic.
func MathDefault(value string) FontChoice {
	if startsWithDigit(value) || MathItLetters[value] {
		return choice("Main-Italic", rnode.MathIt)
	}
	return choice("Math-Italic", rnode.MathDefault)
}

// MathNormal is the font for font setting "mathnormal". Digits are set as
// old-style numerals from the calligraphic font.
func MathNormal(value string) FontChoice {
	if MathItLetters[value] {
		return choice("Main-Italic", rnode.MathIt)
	}
	if startsWithDigit(value) {
		return choice("Caligraphic-Regular", rnode.MathCal)
	}
	return choice("Math-Italic", rnode.MathDefault)
}

// BoldSymbol is the font for font setting "boldsymbol": Math-BoldItalic if it
// has the glyph, Main-Bold otherwise. Text ordinaries (digits, upright
// symbols) always use Main-Bold.
func BoldSymbol(value string, mode symbols.Mode, nodeType parsenode.NodeType, fonts GlyphChecker) FontChoice {
	if nodeType != parsenode.TypeTextOrd && fonts.HasGlyph(value, "Math-BoldItalic", mode) {
		return choice("Math-BoldItalic", rnode.BoldSymbol)
	}
	return choice("Main-Bold", rnode.MathBf)
}

// TextFontName returns the font for a text font family, weight and shape,
// e.g. "SansSerif-BoldItalic" for ("textsf", "textbf", "textit").
func TextFontName(family, weight, shape string) string {
	var base string
	switch family {
	case "amsrm":
		base = "AMS"
	case "textrm":
		base = "Main"
	case "textsf":
		base = "SansSerif"
	case "texttt":
		base = "Typewriter"
	default:
		base = family // fonts added by clients
	}
	var variant string
	switch {
	case weight == "textbf" && shape == "textit":
		variant = "BoldItalic"
	case weight == "textbf":
		variant = "Bold"
	case shape == "textit":
		variant = "Italic"
	default:
		variant = "Regular"
	}
	return base + "-" + variant
}

// OrdFont selects the font of an ordinary symbol. Rules are tried in order:
//
// 1. font setting "boldsymbol" (see BoldSymbol)
//
// 2. font setting "mathnormal" (see MathNormal)
//
// 3. under any other font setting, symbols of MathItLetters use Main-Italic
//
// 4. any other math font setting (see FontMap) or, in text mode, the text
// font family, weight and shape
//
// 5. the defaults: MathDefault for math ordinaries; for text ordinaries
// the text font of the symbol's font (main or ams) in the current weight
// and shape.
//
// Rules 1 to 4 apply only if the selected font has the glyph; otherwise
// selection continues with the defaults.
func OrdFont(value string, mode symbols.Mode, nodeType parsenode.NodeType,
	opts *mathstyle.Options, symtab *symbols.Table, fonts GlyphChecker) FontChoice {
	//
	isFont := mode == symbols.Math || (mode == symbols.Text && opts.Font() != "")
	fontOrFamily := opts.FontFamily()
	if isFont {
		fontOrFamily = opts.Font()
	}
	if fontOrFamily != "" {
		var c FontChoice
		switch {
		case fontOrFamily == "boldsymbol":
			c = BoldSymbol(value, mode, nodeType, fonts)
		case fontOrFamily == "mathnormal":
			c = MathNormal(value)
		case MathItLetters[value]:
			c = choice("Main-Italic", rnode.MathIt)
		case isFont:
			entry, ok := FontMap[fontOrFamily]
			if !ok {
				tracer().Infof("unknown math font %q, using default", fontOrFamily)
				break
			}
			c = choice(entry.FontName, rnode.Class(fontOrFamily))
		default:
			c = choice(TextFontName(fontOrFamily, opts.FontWeight(), opts.FontShape()),
				rnode.Class(fontOrFamily), rnode.Class(opts.FontWeight()), rnode.Class(opts.FontShape()))
		}
		if c.FontName != "" && fonts.HasGlyph(value, c.FontName, mode) {
			return c
		}
	}
	return defaultOrdFont(value, mode, nodeType, opts, symtab)
}

func defaultOrdFont(value string, mode symbols.Mode, nodeType parsenode.NodeType,
	opts *mathstyle.Options, symtab *symbols.Table) FontChoice {
	//
	if nodeType == parsenode.TypeMathOrd {
		return MathDefault(value)
	}
	weight, shape := rnode.Class(opts.FontWeight()), rnode.Class(opts.FontShape())
	info, _ := symtab.Lookup(mode, value)
	switch info.Font {
	case symbols.AMS:
		return choice(TextFontName("amsrm", opts.FontWeight(), opts.FontShape()),
			rnode.AMSRm, weight, shape)
	case symbols.Main, "":
		return choice(TextFontName("textrm", opts.FontWeight(), opts.FontShape()), weight, shape)
	}
	fontName := TextFontName(string(info.Font), opts.FontWeight(), opts.FontShape())
	return choice(fontName, rnode.Class(fontName), weight, shape)
}

// MathSymFont selects the font of non-ordinary atoms (bin, rel, …).
// With font setting "boldsymbol", Main-Bold is used if it has the glyph.
// Symbols of the main symbol font (and the backslash) use Main-Regular,
// all others AMS-Regular.
func MathSymFont(value string, mode symbols.Mode, opts *mathstyle.Options,
	symtab *symbols.Table, fonts GlyphChecker) FontChoice {
	//
	if opts.Font() == "boldsymbol" && fonts.HasGlyph(value, "Main-Bold", mode) {
		return choice("Main-Bold", rnode.MathBf)
	}
	info, ok := symtab.Lookup(mode, value)
	if value == "\\" || !ok || info.Font == symbols.Main {
		return choice("Main-Regular")
	}
	return choice("AMS-Regular", rnode.AMSRm)
}
