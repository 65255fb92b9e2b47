package mathstyle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font"
)

// BaseSize is the size index with a size multiplier of 1.
const BaseSize = 6

var sizeStyleMap = [11][3]int{
	{1, 1, 1}, // size1: [5, 5, 5] in TeX points
	{2, 1, 1}, // size2
	{3, 1, 1}, // size3
	{4, 2, 1}, // size4
	{5, 2, 1}, // size5
	{6, 3, 1}, // size6
	{7, 4, 2}, // size7
	{8, 6, 3}, // size8
	{9, 7, 6}, // size9
	{10, 8, 7},
	{11, 10, 9},
}

var sizeMultipliers = [11]float64{
	0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.2, 1.44, 1.728, 2.074, 2.488,
}

// SizeMultiplier returns the multiplier of a size index (1…11).
func SizeMultiplier(size int) float64 {
	return sizeMultipliers[clampSize(size)-1]
}

func sizeAtStyle(size int, style *Style) int {
	if style.size < 2 {
		return size
	}
	return sizeStyleMap[clampSize(size)-1][style.size-1]
}

func clampSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 11 {
		return 11
	}
	return size
}

// Options describe the environment a node is laid out in. Options are
// immutable: every modification returns a new instance.
type Options struct {
	style          *Style
	color          string
	size           int
	textSize       int
	sizeMultiplier float64
	maxSize        float64
	font           string
	fontFamily     string
	fontWeight     string
	fontShape      string
	nesting        int
}

// NewOptions creates options for a style, a size index and a cap for
// explicit glue (in em). A non-positive maxSize means no cap.
func NewOptions(style *Style, size int, maxSize float64) *Options {
	if style == nil {
		style = Text
	}
	size = clampSize(size)
	if maxSize <= 0 {
		maxSize = math.Inf(1)
	}
	return &Options{
		style:          style,
		size:           size,
		textSize:       size,
		sizeMultiplier: SizeMultiplier(size),
		maxSize:        maxSize,
	}
}

// DefaultOptions returns options for text style at the base size.
func DefaultOptions() *Options {
	return NewOptions(Text, BaseSize, 0)
}

func (o *Options) extend(modify func(*Options)) *Options {
	n := *o
	modify(&n)
	return &n
}

// Style returns the current math style.
func (o *Options) Style() *Style { return o.style }

// Size returns the current size index.
func (o *Options) Size() int { return o.size }

// TextSize returns the size index of the enclosing text.
func (o *Options) TextSize() int { return o.textSize }

// SizeMultiplier returns the multiplier of the current size.
func (o *Options) SizeMultiplier() float64 { return o.sizeMultiplier }

// MaxSize returns the cap for explicit glue, in em.
func (o *Options) MaxSize() float64 { return o.maxSize }

// Color returns the current color, or "".
func (o *Options) Color() string { return o.color }

// Font returns the current math font family (e.g. "mathbf"), or "".
func (o *Options) Font() string { return o.font }

// FontFamily returns the current text font family (e.g. "textrm"), or "".
func (o *Options) FontFamily() string { return o.fontFamily }

// FontWeight returns the current text font weight ("textbf", "textmd"), or "".
func (o *Options) FontWeight() string { return o.fontWeight }

// FontShape returns the current text font shape ("textit", "textup"), or "".
func (o *Options) FontShape() string { return o.fontShape }

// Nesting returns the nesting depth of the current group.
func (o *Options) Nesting() int { return o.nesting }

// FontMetrics returns the font parameters for the current size.
func (o *Options) FontMetrics() *font.FontParams {
	return font.ParamsForSize(o.size)
}

// HavingStyle returns options for a style, adapting the size. If the style
// is unchanged, o is returned.
func (o *Options) HavingStyle(style *Style) *Options {
	if o.style == style {
		return o
	}
	return o.extend(func(n *Options) {
		n.style = style
		n.size = sizeAtStyle(o.textSize, style)
		n.sizeMultiplier = SizeMultiplier(n.size)
	})
}

// HavingCrampedStyle returns options for the cramped variant of the current style.
func (o *Options) HavingCrampedStyle() *Options {
	return o.HavingStyle(o.style.Cramp())
}

// HavingSize returns options for a size index in text style.
func (o *Options) HavingSize(size int) *Options {
	size = clampSize(size)
	if o.size == size && o.textSize == size {
		return o
	}
	return o.extend(func(n *Options) {
		n.style = o.style.Text()
		n.size = size
		n.textSize = size
		n.sizeMultiplier = SizeMultiplier(size)
	})
}

// HavingBaseStyle returns options for a style at the base size. A nil style
// selects the text variant of the current style.
func (o *Options) HavingBaseStyle(style *Style) *Options {
	if style == nil {
		style = o.style.Text()
	}
	want := sizeAtStyle(BaseSize, style)
	if o.size == want && o.textSize == BaseSize && o.style == style {
		return o
	}
	return o.extend(func(n *Options) {
		n.style = style
		n.size = want
		n.textSize = BaseSize
		n.sizeMultiplier = SizeMultiplier(want)
	})
}

// WithColor returns options with a color.
func (o *Options) WithColor(color string) *Options {
	return o.extend(func(n *Options) { n.color = color })
}

// WithFont returns options with a math font family.
func (o *Options) WithFont(font string) *Options {
	return o.extend(func(n *Options) { n.font = font })
}

// WithTextFontFamily returns options with a text font family; the math font
// is reset.
func (o *Options) WithTextFontFamily(family string) *Options {
	return o.extend(func(n *Options) {
		n.fontFamily = family
		n.font = ""
	})
}

// WithTextFontWeight returns options with a text font weight; the math font
// is reset.
func (o *Options) WithTextFontWeight(weight string) *Options {
	return o.extend(func(n *Options) {
		n.fontWeight = weight
		n.font = ""
	})
}

// WithTextFontShape returns options with a text font shape; the math font
// is reset.
func (o *Options) WithTextFontShape(shape string) *Options {
	return o.extend(func(n *Options) {
		n.fontShape = shape
		n.font = ""
	})
}

// Nested returns options one nesting level deeper.
func (o *Options) Nested() *Options {
	return o.extend(func(n *Options) { n.nesting++ })
}

// SizingClasses returns the classes needed to switch from the size of old
// to the size of o, or nil if the sizes are equal.
func (o *Options) SizingClasses(old *Options) []string {
	if old.size == o.size {
		return nil
	}
	return []string{"sizing", "reset-size" + strconv.Itoa(old.size), "size" + strconv.Itoa(o.size)}
}

// BaseSizingClasses returns the classes needed to switch from the current
// size to the base size, or nil if already at base size.
func (o *Options) BaseSizingClasses() []string {
	if o.size == BaseSize {
		return nil
	}
	return []string{"sizing", "reset-size" + strconv.Itoa(o.size), "size" + strconv.Itoa(BaseSize)}
}

// CalculateSize converts a measurement to em in the current options,
// capped at MaxSize.
//
// Math units use the current font's quad/18. Font-relative units (em, ex)
// are taken from text style even in script styles, scaled to the current
// size. Absolute units are converted through the font's points per em.
func (o *Options) CalculateSize(m dimen.Measurement) (float64, error) {
	var scale float64
	switch m.Unit {
	case dimen.UnitMU:
		scale = o.FontMetrics().CSSEmPerMu
	case dimen.UnitEM, dimen.UnitEX:
		unitOptions := o
		if o.style.IsTight() {
			unitOptions = o.HavingStyle(o.style.Text())
		}
		if m.Unit == dimen.UnitEX {
			scale = unitOptions.FontMetrics().XHeight
		} else {
			scale = unitOptions.FontMetrics().Quad
		}
		if unitOptions != o {
			scale *= unitOptions.sizeMultiplier / o.sizeMultiplier
		}
	default:
		pt, ok := dimen.PtPerUnit(m.Unit)
		if !ok {
			return 0, core.Error(core.EINVALID, "invalid unit %q", m.Unit)
		}
		scale = pt / o.FontMetrics().PtPerEm / o.sizeMultiplier
	}
	return math.Min(m.Number*scale, o.maxSize), nil
}

func (o *Options) String() string {
	return fmt.Sprintf("Options{style=%s size=%d mult=%.3f font=%q family=%q color=%q}",
		o.style, o.size, o.sizeMultiplier, o.font, o.fontFamily, o.color)
}
