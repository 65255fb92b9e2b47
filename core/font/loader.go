package font

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flopp/go-findfont"
	jsoniter "github.com/json-iterator/go"

	"github.com/npillmayer/tymath/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadJSON reads metric tables in KaTeX's metric data format: an object
// mapping font names to objects, which map decimal code points to arrays
// [depth, height, italic, skew, width].
//
//	{ "Main-Regular": { "65": [0, 0.68333, 0, 0, 0.75], … }, … }
//
// Arrays with fewer than five entries are rejected.
func LoadJSON(r io.Reader) (*MetricTables, error) {
	var raw map[string]map[string][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode font metrics")
	}
	mt := NewMetricTables()
	for fontName, chars := range raw {
		mt.AddFont(fontName)
		for code, values := range chars {
			cp, err := strconv.Atoi(code)
			if err != nil {
				return nil, core.Error(core.EINVALID, "font %s: illegal code point %q", fontName, code)
			}
			if len(values) < 5 {
				return nil, core.Error(core.EINVALID, "font %s: incomplete metrics for code point %d",
					fontName, cp)
			}
			mt.Add(fontName, rune(cp), CharacterMetrics{
				Depth:  values[0],
				Height: values[1],
				Italic: values[2],
				Skew:   values[3],
				Width:  values[4],
			})
		}
	}
	tracer().Debugf("loaded metrics for %d fonts", len(raw))
	return mt, nil
}

// LoadSystemFont locates a font file installed on the system (e.g.
// "KaTeX_Main-Regular.ttf") and enters metrics for runes into mt as font
// fontName. If runes is empty, the characters covered by the Go font
// metrics are measured.
func LoadSystemFont(mt *MetricTables, fontName, fileName string, runes []rune, italic bool) error {
	path, err := findfont.Find(fileName)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot find font file %s", fileName)
	}
	sf, err := LoadOpenTypeFont(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot load font %s", path)
	}
	if len(runes) == 0 {
		runes = GoFontMetrics().runes(fontName)
	}
	n := addGlyphMetrics(mt, fontName, sf, runes, italic, 1)
	tracer().Infof("font %s: measured %d glyphs from %s", fontName, n, path)
	if n == 0 {
		return fmt.Errorf("font %s has no glyphs for the requested characters", path)
	}
	return nil
}

// runes returns the characters of a font's table. For unknown fonts,
// the characters of Main-Regular are returned.
func (mt *MetricTables) runes(fontName string) []rune {
	mt.RLock()
	defer mt.RUnlock()
	t, ok := mt.fonts[fontName]
	if !ok {
		t = mt.fonts["Main-Regular"]
	}
	runes := make([]rune, 0, len(t))
	for r := range t {
		runes = append(runes, r)
	}
	return runes
}
