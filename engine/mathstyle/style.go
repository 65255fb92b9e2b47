/*
Package mathstyle implements TeX's math styles and the immutable layout
options derived from them.

TeX distinguishes eight styles: display, text, script and scriptscript,
each in a normal and a cramped variant. Styles determine font sizes of
sub-formulas and, through their size class, the font parameters to use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathstyle

// Style is one of TeX's eight math styles. Styles are singletons and may be
// compared with ==.
type Style struct {
	id      int
	size    int // 0 = display/text, 1 = script, 2 = scriptscript
	cramped bool
	name    string
}

const (
	idD = iota
	idDc
	idT
	idTc
	idS
	idSc
	idSS
	idSSc
)

var styles = [8]*Style{
	{idD, 0, false, "D"},
	{idDc, 0, true, "D'"},
	{idT, 1, false, "T"},
	{idTc, 1, true, "T'"},
	{idS, 2, false, "S"},
	{idSc, 2, true, "S'"},
	{idSS, 3, false, "SS"},
	{idSSc, 3, true, "SS'"},
}

// The eight math styles
var (
	Display             = styles[idD]
	DisplayCramped      = styles[idDc]
	Text                = styles[idT]
	TextCramped         = styles[idTc]
	Script              = styles[idS]
	ScriptCramped       = styles[idSc]
	ScriptScript        = styles[idSS]
	ScriptScriptCramped = styles[idSSc]
)

var (
	supTable     = [8]int{idS, idSc, idS, idSc, idSS, idSSc, idSS, idSSc}
	subTable     = [8]int{idSc, idSc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	fracNumTable = [8]int{idT, idTc, idS, idSc, idSS, idSSc, idSS, idSSc}
	fracDenTable = [8]int{idTc, idTc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	crampTable   = [8]int{idDc, idDc, idTc, idTc, idSc, idSc, idSSc, idSSc}
	textTable    = [8]int{idD, idDc, idT, idTc, idT, idTc, idT, idTc}
)

// Sup returns the style of a superscript.
func (s *Style) Sup() *Style { return styles[supTable[s.id]] }

// Sub returns the style of a subscript.
func (s *Style) Sub() *Style { return styles[subTable[s.id]] }

// FracNum returns the style of a fraction numerator.
func (s *Style) FracNum() *Style { return styles[fracNumTable[s.id]] }

// FracDen returns the style of a fraction denominator.
func (s *Style) FracDen() *Style { return styles[fracDenTable[s.id]] }

// Cramp returns the cramped version of a style.
func (s *Style) Cramp() *Style { return styles[crampTable[s.id]] }

// Text returns a text style (display or text) of the same crampedness.
func (s *Style) Text() *Style { return styles[textTable[s.id]] }

// IsTight is true for script and scriptscript styles.
func (s *Style) IsTight() bool { return s.size >= 2 }

// IsCramped is true for cramped styles.
func (s *Style) IsCramped() bool { return s.cramped }

// Size returns the size class of a style: 0 for display, 1 for text, 2 for
// script and 3 for scriptscript.
func (s *Style) Size() int { return s.size }

func (s *Style) String() string { return s.name }

// StyleByName returns a style for one of the names "display", "text",
// "script" or "scriptscript".
func StyleByName(name string) (*Style, bool) {
	switch name {
	case "display":
		return Display, true
	case "text":
		return Text, true
	case "script":
		return Script, true
	case "scriptscript":
		return ScriptScript, true
	}
	return nil, false
}
