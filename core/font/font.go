package font

import (
	"fmt"
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ScalableFont is a parsed OpenType or TrueType font.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
	mu       sync.Mutex // guards buf
	buf      sfnt.Buffer
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of a font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// GlyphMetrics measures the glyph for a character, in em.
// If the font has no glyph for ch, ok is false.
//
// Height and depth are taken from the glyph's bounding box, width from its
// advance. If withItalic is set, the amount the glyph's ink extends beyond
// its advance is reported as the italic correction.
func (sf *ScalableFont) GlyphMetrics(ch rune, withItalic bool) (m CharacterMetrics, ok bool, err error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	idx, err := sf.SFNT.GlyphIndex(&sf.buf, ch)
	if err != nil || idx == 0 {
		return m, false, err
	}
	upem := fixed.Int26_6(sf.SFNT.UnitsPerEm())
	ppem := upem << 6 // measure in font units
	bounds, advance, err := sf.SFNT.GlyphBounds(&sf.buf, idx, ppem, xfont.HintingNone)
	if err != nil {
		return m, false, fmt.Errorf("cannot measure glyph for %q: %w", ch, err)
	}
	em := func(v fixed.Int26_6) float64 {
		return float64(v) / float64(ppem)
	}
	// sfnt bounds have the y-axis pointing down
	m.Height = max0(em(-bounds.Min.Y))
	m.Depth = max0(em(bounds.Max.Y))
	m.Width = em(advance)
	if withItalic {
		m.Italic = max0(em(bounds.Max.X - advance))
	}
	return m, true, nil
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	f.Fontname = "Go Sans"
	f.Filepath = "internal"
	return f
}
