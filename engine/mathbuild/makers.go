package mathbuild

import (
	"fmt"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/fontrules"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// MakeSymbol creates a symbol leaf for value, set in fontName.
//
// The value is replaced by its symbol table replacement first. If the font
// has no metrics for the character, a symbol with zero metrics is returned.
// Italic correction is dropped in text mode and for font "mathit".
// With options given, the symbol gets the size multiplier as its max font
// size, class mtight in script styles, and the current color.
//
// MakeSymbol fails only if fontName has no metric table at all.
func (env *Environment) MakeSymbol(value, fontName string, mode symbols.Mode,
	opts *mathstyle.Options, classes ...rnode.Class) (*rnode.Symbol, error) {
	//
	value, m, err := env.LookupSymbol(value, fontName, mode)
	if err != nil {
		return nil, err
	}
	var sym *rnode.Symbol
	if m != nil {
		italic := m.Italic
		if mode == symbols.Text || (opts != nil && opts.Font() == "mathit") {
			italic = 0
		}
		sym = rnode.NewSymbol(value, m.Height, m.Depth, italic, m.Skew, m.Width, classes...)
	} else {
		tracer().Debugf("No character metrics for '%s' in style '%s'", value, fontName)
		sym = rnode.NewSymbol(value, 0, 0, 0, 0, 0, classes...)
	}
	if opts != nil {
		sym.MaxFontSize = opts.SizeMultiplier()
		if opts.Style().IsTight() {
			sym.Classes.Add(rnode.MTight)
		}
		if c := opts.Color(); c != "" {
			sym.Style.Color = c
		}
	}
	return sym, nil
}

// MakeOrd creates a symbol of class mord for a math or text ordinary, in the
// font selected by package fontrules.
func (env *Environment) MakeOrd(node parsenode.Node, opts *mathstyle.Options) (*rnode.Symbol, error) {
	text, ok := parsenode.Ord(node)
	if !ok {
		return nil, core.UnexpectedNodeShape("ord", node)
	}
	mode := node.Mode()
	choice := fontrules.OrdFont(text, mode, node.Type(), opts, env.symbols, env)
	classes := append([]rnode.Class{rnode.MOrd}, choice.Classes...)
	return env.MakeSymbol(text, choice.FontName, mode, opts, classes...)
}

// MathSym creates a symbol for a non-ordinary atom, e.g. a binary operator.
func (env *Environment) MathSym(value string, mode symbols.Mode, opts *mathstyle.Options,
	classes ...rnode.Class) (*rnode.Symbol, error) {
	//
	choice := fontrules.MathSymFont(value, mode, opts, env.symbols, env)
	return env.MakeSymbol(value, choice.FontName, mode, opts, append(classes, choice.Classes...)...)
}

// MakeSpan creates a span, sized from its children. With options given,
// the span gets class mtight in script styles and the current color.
func MakeSpan(classes []rnode.Class, children []rnode.Node, opts *mathstyle.Options) *rnode.Span {
	span := rnode.NewSpan(rnode.NewClassSet(classes...), children...)
	if opts != nil {
		if opts.Style().IsTight() {
			span.Classes.Add(rnode.MTight)
		}
		if c := opts.Color(); c != "" {
			span.Style.Color = c
		}
	}
	return span
}

// calculateSize converts a measurement to em. A zero measurement is 0
// without regard to its unit.
func calculateSize(m dimen.Measurement, opts *mathstyle.Options) (float64, error) {
	if m.Number == 0 {
		return 0, nil
	}
	return opts.CalculateSize(m)
}

// MakeGlue creates an empty span of class mspace with a right margin of m.
func MakeGlue(m dimen.Measurement, opts *mathstyle.Options) (*rnode.Span, error) {
	size, err := calculateSize(m, opts)
	if err != nil {
		return nil, err
	}
	glue := MakeSpan([]rnode.Class{rnode.MSpace}, nil, opts)
	glue.Style.MarginRight = rnode.SomeEm(size)
	return glue, nil
}

// MakeLineSpan creates a horizontal rule with a bottom border. If thickness
// is not positive, the font's default rule thickness is used.
func MakeLineSpan(class rnode.Class, opts *mathstyle.Options, thickness float64) *rnode.Span {
	line := MakeSpan([]rnode.Class{class}, nil, opts)
	if thickness <= 0 {
		thickness = opts.FontMetrics().DefaultRuleThickness
	}
	line.Height = thickness
	line.Style.BorderBottomWidth = rnode.SomeEm(thickness)
	line.MaxFontSize = 1.0
	return line
}

// MakeNullDelimiter creates an empty delimiter, reset to base size.
func MakeNullDelimiter(opts *mathstyle.Options, classes ...rnode.Class) *rnode.Span {
	classes = append(classes, rnode.NullDelimiter)
	classes = append(classes, asClasses(opts.BaseSizingClasses())...)
	return MakeSpan(classes, nil, nil)
}

func asClasses(names []string) []rnode.Class {
	classes := make([]rnode.Class, len(names))
	for i, name := range names {
		classes[i] = rnode.Class(name)
	}
	return classes
}

// --- Static paths ----------------------------------------------------------

// pathShape describes a static vector shape, dimensions in em.
type pathShape struct {
	width, height float64
	geometry      func(w, h float64) string
}

var pathData = map[string]pathShape{
	"vec":         {0.471, 0.714, arrowGeometry}, // from the font glyph
	"oiintSize1":  {0.957, 0.499, ovalGeometry},  // oval to overlay the integrand
	"oiintSize2":  {1.472, 0.659, ovalGeometry},
	"oiiintSize1": {1.304, 0.499, ovalGeometry},
	"oiiintSize2": {1.98, 0.659, ovalGeometry},
}

// arrowGeometry draws a vector arrow into the lower half of a w×h view box.
func arrowGeometry(w, h float64) string {
	y := h * 0.75
	head := w * 0.25
	return fmt.Sprintf("M0 %g H%g M%g %g L%g %g L%g %g",
		y, w, w-head, y-head/2, w, y, w-head, y+head/2)
}

// ovalGeometry draws an ellipse filling a w×h view box.
func ovalGeometry(w, h float64) string {
	rx, ry := w/2, h/2
	return fmt.Sprintf("M0 %g A%g %g 0 1 0 %g %g A%g %g 0 1 0 0 %g Z",
		ry, rx, ry, w, ry, rx, ry, ry)
}

// StaticPath creates a span of class overlay holding a predefined vector
// shape: "vec" for vector accents, and "oiintSize1", "oiintSize2",
// "oiiintSize1", "oiiintSize2" for the ovals of surface and volume integrals.
func StaticPath(name string, opts *mathstyle.Options) (*rnode.PathSpan, error) {
	shape, ok := pathData[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no static path %q", name)
	}
	vb := rnode.ViewBox{Width: 1000 * shape.width, Height: 1000 * shape.height}
	holder := &rnode.PathHolder{
		Paths:               []*rnode.Path{{Name: name, Data: shape.geometry(vb.Width, vb.Height)}},
		Width:               rnode.SomeEm(shape.width),
		Height:              rnode.SomeEm(shape.height),
		ViewBox:             vb,
		PreserveAspectRatio: "xMinYMin",
	}
	span := rnode.NewPathSpan(rnode.NewClassSet(rnode.Overlay), holder)
	if opts != nil && opts.Color() != "" {
		span.Style.Color = opts.Color()
	}
	span.Height = shape.height
	span.Style.Height = rnode.SomeEm(shape.height)
	span.Style.Width = rnode.SomeEm(shape.width)
	return span, nil
}
