package font

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"github.com/npillmayer/tymath/core/symbols"
)

// goFace describes how a math font is approximated by a Go font.
type goFace struct {
	file   string  // key into goFontFiles
	italic bool    // report italic corrections
	scale  float64 // for the larger delimiter and operator fonts
}

var goFontFiles = map[string][]byte{
	"goregular":         goregular.TTF,
	"gobold":            gobold.TTF,
	"gobolditalic":      gobolditalic.TTF,
	"goitalic":          goitalic.TTF,
	"gomedium":          gomedium.TTF,
	"gomediumitalic":    gomediumitalic.TTF,
	"gomono":            gomono.TTF,
	"gosmallcaps":       gosmallcaps.TTF,
	"gosmallcapsitalic": gosmallcapsitalic.TTF,
}

// mathFontFaces maps the math fonts the engine selects to faces of the
// Go font family.
var mathFontFaces = map[string]goFace{
	"AMS-Regular":         {"goregular", false, 1},
	"Caligraphic-Regular": {"gosmallcaps", false, 1},
	"Fraktur-Regular":     {"goregular", false, 1},
	"Main-Bold":           {"gobold", false, 1},
	"Main-BoldItalic":     {"gobolditalic", true, 1},
	"Main-Italic":         {"goitalic", true, 1},
	"Main-Regular":        {"goregular", false, 1},
	"Math-BoldItalic":     {"gobolditalic", true, 1},
	"Math-Italic":         {"goitalic", true, 1},
	"SansSerif-Bold":      {"gobold", false, 1},
	"SansSerif-Italic":    {"gomediumitalic", true, 1},
	"SansSerif-Regular":   {"gomedium", false, 1},
	"Script-Regular":      {"gosmallcapsitalic", true, 1},
	"Size1-Regular":       {"goregular", false, 1.2},
	"Size2-Regular":       {"goregular", false, 1.8},
	"Size3-Regular":       {"goregular", false, 2.4},
	"Size4-Regular":       {"goregular", false, 3.0},
	"Typewriter-Regular":  {"gomono", false, 1},
}

// MathFontNames returns the names of all math fonts the engine may select.
func MathFontNames() []string {
	names := make([]string, 0, len(mathFontFaces))
	for name := range mathFontFaces {
		names = append(names, name)
	}
	return names
}

var goFontMetrics *MetricTables
var goFontMetricsCreation sync.Once

// GoFontMetrics returns metric tables for all math fonts, derived from the
// Go font family. The tables are created on first use and shared; clients
// wanting to add metrics should Merge them into tables of their own.
//
// Tables cover printable ASCII, Greek and the characters of the predefined
// symbol table. Other characters are left to the approximation rules.
func GoFontMetrics() *MetricTables {
	goFontMetricsCreation.Do(func() {
		goFontMetrics = buildGoFontMetrics(coveredRunes(symbols.Default()))
	})
	return goFontMetrics
}

func buildGoFontMetrics(runes []rune) *MetricTables {
	mt := NewMetricTables()
	parsed := make(map[string]*ScalableFont, len(goFontFiles))
	for name, face := range mathFontFaces {
		sf, ok := parsed[face.file]
		if !ok {
			var err error
			if sf, err = ParseOpenTypeFont(goFontFiles[face.file]); err != nil {
				tracer().Errorf("cannot parse Go font for %s: %v", name, err)
				continue
			}
			parsed[face.file] = sf
		}
		addGlyphMetrics(mt, name, sf, runes, face.italic, face.scale)
	}
	tracer().Infof("derived metrics for %d math fonts from Go fonts", len(mt.Fonts()))
	return mt
}

func addGlyphMetrics(mt *MetricTables, fontName string, sf *ScalableFont, runes []rune,
	italic bool, scale float64) int {
	//
	mt.AddFont(fontName)
	n := 0
	for _, r := range runes {
		m, ok, err := sf.GlyphMetrics(r, italic)
		if err != nil {
			tracer().Debugf("font %s: %v", fontName, err)
		}
		if !ok {
			continue
		}
		if scale != 1 {
			m.Height *= scale
			m.Depth *= scale
			m.Width *= scale
			m.Italic *= scale
		}
		mt.Add(fontName, r, m)
		n++
	}
	return n
}

// coveredRunes collects the characters metric tables are built for.
func coveredRunes(table *symbols.Table) []rune {
	seen := make(map[rune]bool, 512)
	var runes []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			runes = append(runes, r)
		}
	}
	for r := rune(0x20); r < 0x7f; r++ {
		add(r)
	}
	for r := rune(0x391); r <= 0x3c9; r++ {
		add(r)
	}
	for _, r := range "ϑϕϖϰϱϵıȷ£" {
		add(r)
	}
	for _, mode := range []symbols.Mode{symbols.Math, symbols.Text} {
		for _, r := range table.Characters(mode) {
			add(r)
		}
	}
	return runes
}
