package mathbuild

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// builtinBuilders are registered with every new environment.
var builtinBuilders = map[parsenode.NodeType]GroupBuilder{
	parsenode.TypeMathOrd:  buildOrd,
	parsenode.TypeTextOrd:  buildOrd,
	parsenode.TypeAtom:     buildAtom,
	parsenode.TypeOp:       buildOp,
	parsenode.TypeOrdGroup: buildOrdGroup,
	parsenode.TypeColor:    buildColor,
	parsenode.TypeSizing:   buildSizing,
	parsenode.TypeStyling:  buildStyling,
	parsenode.TypeFont:     buildFont,
	parsenode.TypeText:     buildText,
	parsenode.TypeKern:     buildKern,
	parsenode.TypeSpacing:  buildSpacing,
	parsenode.TypeNewline:  buildNewline,
	parsenode.TypeSupSub:   buildSupSub,
	parsenode.TypeAccent:   buildAccent,
	parsenode.TypeRule:     buildRule,
	parsenode.TypeOverline: buildOverline,
}

func buildOrd(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	sym, err := env.MakeOrd(node, opts)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

func buildAtom(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	atom, ok := node.(*parsenode.Atom)
	if !ok {
		return nil, core.UnexpectedNodeShape("atom", node)
	}
	class := rnode.Class("m" + string(atom.Family))
	if !class.IsAtomClass() {
		return nil, core.UnexpectedNodeShape("atom", atom.Family)
	}
	sym, err := env.MathSym(atom.Text, atom.Mode(), opts, class)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

func buildOrdGroup(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	group, ok := node.(*parsenode.OrdGroup)
	if !ok {
		return nil, core.UnexpectedNodeShape("ordgroup", node)
	}
	inner, err := env.BuildExpression(group.Body, opts, true)
	if err != nil {
		return nil, err
	}
	return MakeSpan([]rnode.Class{rnode.MOrd}, inner, opts), nil
}

// --- Partial groups --------------------------------------------------------

// Partial groups return fragments, which the enclosing expression flattens.

func buildColor(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	color, ok := node.(*parsenode.Color)
	if !ok {
		return nil, core.UnexpectedNodeShape("color", node)
	}
	inner, err := env.BuildExpression(color.Body, opts.WithColor(color.Color), false)
	if err != nil {
		return nil, err
	}
	return rnode.NewFragment(inner...), nil
}

func buildSizing(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	sizing, ok := node.(*parsenode.Sizing)
	if !ok {
		return nil, core.UnexpectedNodeShape("sizing", node)
	}
	return env.sizingGroup(sizing.Body, opts.HavingSize(sizing.Size), opts)
}

func buildStyling(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	styling, ok := node.(*parsenode.Styling)
	if !ok {
		return nil, core.UnexpectedNodeShape("styling", node)
	}
	style, ok := mathstyle.StyleByName(styling.Style)
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown math style %q", styling.Style)
	}
	return env.sizingGroup(styling.Body, opts.HavingStyle(style).WithFont(""), opts)
}

// sizingGroup builds a partial group at a different size. Every node of the
// group gets sizing classes and is scaled by the ratio of the size
// multipliers. Nodes already carrying sizing classes from an inner size
// change are reset to the outer size instead.
func (env *Environment) sizingGroup(body []parsenode.Node, opts, base *mathstyle.Options) (rnode.Node, error) {
	inner, err := env.BuildExpression(body, opts, false)
	if err != nil {
		return nil, err
	}
	multiplier := opts.SizeMultiplier() / base.SizeMultiplier()
	innerReset := rnode.Class("reset-size" + strconv.Itoa(opts.Size()))
	for _, n := range inner {
		m := n.Metrics()
		pos := classIndex(m.Classes, rnode.Sizing)
		if pos < 0 {
			m.Classes.Add(asClasses(opts.SizingClasses(base))...)
		} else if pos+1 < len(m.Classes) && m.Classes[pos+1] == innerReset {
			m.Classes[pos+1] = rnode.Class("reset-size" + strconv.Itoa(base.Size()))
		}
		m.Height *= multiplier
		m.Depth *= multiplier
	}
	return rnode.NewFragment(inner...), nil
}

func classIndex(cs rnode.ClassSet, c rnode.Class) int {
	for i, x := range cs {
		if x == c {
			return i
		}
	}
	return -1
}

func buildFont(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	f, ok := node.(*parsenode.Font)
	if !ok {
		return nil, core.UnexpectedNodeShape("font", node)
	}
	return env.BuildGroup(f.Body, opts.WithFont(strings.TrimPrefix(f.Font, "\\")), nil)
}

// --- Glue and breaks -------------------------------------------------------

func buildKern(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	kern, ok := node.(*parsenode.Kern)
	if !ok {
		return nil, core.UnexpectedNodeShape("kern", node)
	}
	glue, err := MakeGlue(kern.Dimension, opts)
	if err != nil {
		return nil, err
	}
	return glue, nil
}

// regularSpaces are spaces with a glyph; the value is a break marker class.
var regularSpaces = map[string]rnode.Class{
	" ":              "",
	"\\ ":            "",
	"~":              rnode.NoBreak,
	"\\space":        "",
	"\\nobreakspace": rnode.NoBreak,
}

// breakControls are empty spaces controlling line breaks.
var breakControls = map[string]rnode.Class{
	"\\nobreak":    rnode.NoBreak,
	"\\allowbreak": rnode.AllowBreak,
}

func buildSpacing(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	spacing, ok := node.(*parsenode.Spacing)
	if !ok {
		return nil, core.UnexpectedNodeShape("spacing", node)
	}
	if marker, ok := regularSpaces[spacing.Text]; ok {
		if spacing.Mode() == symbols.Text {
			ord := &parsenode.TextOrd{Base: spacing.Base, Text: spacing.Text}
			sym, err := env.MakeOrd(ord, opts)
			if err != nil {
				return nil, err
			}
			sym.Classes.Add(marker)
			return sym, nil
		}
		sym, err := env.MathSym(spacing.Text, spacing.Mode(), opts)
		if err != nil {
			return nil, err
		}
		return MakeSpan([]rnode.Class{rnode.MSpace, marker}, []rnode.Node{sym}, opts), nil
	}
	if marker, ok := breakControls[spacing.Text]; ok {
		return MakeSpan([]rnode.Class{rnode.MSpace, marker}, nil, opts), nil
	}
	return nil, core.Error(core.EINVALID, "unknown type of space %q", spacing.Text)
}

func buildNewline(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	if _, ok := node.(*parsenode.Newline); !ok {
		return nil, core.UnexpectedNodeShape("newline", node)
	}
	return MakeSpan([]rnode.Class{rnode.MSpace, rnode.Newline}, nil, opts), nil
}

// buildRule creates a filled rectangle from borders. The rule is raised by
// its shift; height and depth are clipped at the baseline.
func buildRule(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	r, ok := node.(*parsenode.Rule)
	if !ok {
		return nil, core.UnexpectedNodeShape("rule", node)
	}
	width, err := calculateSize(r.Width, opts)
	if err != nil {
		return nil, err
	}
	height, err := calculateSize(r.Height, opts)
	if err != nil {
		return nil, err
	}
	shift, err := calculateSize(r.Shift, opts)
	if err != nil {
		return nil, err
	}
	rule := MakeSpan([]rnode.Class{rnode.MOrd, rnode.Rule}, nil, opts)
	rule.Style.BorderRightWidth = rnode.SomeEm(width)
	rule.Style.BorderTopWidth = rnode.SomeEm(height)
	rule.Style.Bottom = rnode.SomeEm(shift)
	rule.Height = max(0, height+shift)
	rule.Depth = max(0, -shift)
	rule.MaxFontSize = height * 1.2 * opts.SizeMultiplier()
	return rule, nil
}
