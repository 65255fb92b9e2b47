package font

import (
	"sort"
	"sync"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
)

// CharacterMetrics are the metrics of a single glyph, in em.
type CharacterMetrics struct {
	Depth  float64
	Height float64
	Italic float64
	Skew   float64
	Width  float64
}

// MetricTables holds character metrics for a set of named fonts.
// It is safe for concurrent use.
type MetricTables struct {
	sync.RWMutex
	fonts map[string]map[rune]CharacterMetrics
}

// NewMetricTables creates an empty set of metric tables.
func NewMetricTables() *MetricTables {
	return &MetricTables{
		fonts: make(map[string]map[rune]CharacterMetrics),
	}
}

// Add enters the metrics of a single character. The font's table is created
// if necessary.
func (mt *MetricTables) Add(fontName string, ch rune, m CharacterMetrics) {
	mt.Lock()
	defer mt.Unlock()
	t, ok := mt.fonts[fontName]
	if !ok {
		t = make(map[rune]CharacterMetrics)
		mt.fonts[fontName] = t
	}
	t[ch] = m
}

// AddFont makes sure a table for fontName exists, even if it is empty.
func (mt *MetricTables) AddFont(fontName string) {
	mt.Lock()
	defer mt.Unlock()
	if _, ok := mt.fonts[fontName]; !ok {
		mt.fonts[fontName] = make(map[rune]CharacterMetrics)
	}
}

// Merge copies all metrics of other into mt, overriding existing entries.
func (mt *MetricTables) Merge(other *MetricTables) {
	if other == nil || other == mt {
		return
	}
	other.RLock()
	defer other.RUnlock()
	mt.Lock()
	defer mt.Unlock()
	for name, table := range other.fonts {
		t, ok := mt.fonts[name]
		if !ok {
			t = make(map[rune]CharacterMetrics, len(table))
			mt.fonts[name] = t
		}
		for ch, m := range table {
			t[ch] = m
		}
	}
}

// Has is true if a table exists for fontName.
func (mt *MetricTables) Has(fontName string) bool {
	mt.RLock()
	defer mt.RUnlock()
	_, ok := mt.fonts[fontName]
	return ok
}

// Fonts returns the names of all fonts with a metric table, sorted.
func (mt *MetricTables) Fonts() []string {
	mt.RLock()
	defer mt.RUnlock()
	names := make([]string, 0, len(mt.fonts))
	for name := range mt.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of characters in the table for fontName.
func (mt *MetricTables) Len(fontName string) int {
	mt.RLock()
	defer mt.RUnlock()
	return len(mt.fonts[fontName])
}

// CharacterMetrics resolves the metrics of the first character of a string
// in a given font.
//
// If fontName has no table at all, an error wrapping core.ErrMissingFontMetrics
// is returned. Characters of the approximation table without metrics of their
// own are measured by their Latin look-alikes. In text mode, characters of supported
// scripts without metrics fall back to the metrics of 'M'. If no metrics can
// be found, CharacterMetrics returns nil without an error.
func (mt *MetricTables) CharacterMetrics(character string, fontName string,
	mode symbols.Mode) (*CharacterMetrics, error) {
	//
	mt.RLock()
	defer mt.RUnlock()
	table, ok := mt.fonts[fontName]
	if !ok {
		return nil, core.MissingFontMetrics(fontName)
	}
	ch := firstRune(character)
	m, ok := table[ch]
	if !ok {
		if approx, isApprox := ApproximateGlyph(ch); isApprox {
			ch = approx
			m, ok = table[ch]
		}
	}
	if !ok && mode == symbols.Text && SupportedCodepoint(ch) {
		m, ok = table['M']
	}
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
