package mathbuild

import (
	"strings"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// vlistChild is a node of a vertical list, shifted down from the baseline
// by shift em (negative values shift up).
type vlistChild struct {
	node        rnode.Node
	shift       float64
	marginLeft  rnode.EmT
	marginRight rnode.EmT
}

// makeVList stacks children at individual shifts. Each child is wrapped
// into a span positioned by its shift, so the list is sized from the
// shifted extents of its children.
func makeVList(children []vlistChild) *rnode.Span {
	rows := make([]rnode.Node, len(children))
	for i, c := range children {
		row := rnode.NewSpan(nil, c.node)
		row.Style.Top = rnode.SomeEm(c.shift)
		row.Style.MarginLeft = c.marginLeft
		row.Style.MarginRight = c.marginRight
		rows[i] = row
	}
	return rnode.NewSpan(rnode.NewClassSet(rnode.VList), rows...)
}

// kernBox is an empty box reserving vertical space.
func kernBox(height float64) *rnode.Span {
	k := rnode.NewSpan(nil)
	k.Height = max(0, height)
	return k
}

// isCharacterBox is true for nodes that build into a single symbol.
func isCharacterBox(n parsenode.Node) bool {
	switch n.(type) {
	case *parsenode.MathOrd, *parsenode.TextOrd, *parsenode.Atom:
		return true
	}
	return false
}

// --- Scripts ---------------------------------------------------------------

func buildSupSub(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	supsub, ok := node.(*parsenode.SupSub)
	if !ok {
		return nil, core.UnexpectedNodeShape("supsub", node)
	}
	if op, ok := supsub.Nucleus.(*parsenode.Op); ok && op.Limits && opts.Style().Size() == mathstyle.Display.Size() {
		return env.buildLimits(op, supsub, opts)
	}
	base, err := env.BuildGroup(supsub.Nucleus, opts, nil)
	if err != nil {
		return nil, err
	}
	bm := base.Metrics()
	metrics := opts.FontMetrics()
	charBox := supsub.Nucleus == nil || isCharacterBox(supsub.Nucleus)
	var sup, sub rnode.Node
	var supShift, subShift float64
	if supsub.Sup != nil {
		supOpts := opts.HavingStyle(opts.Style().Sup())
		if sup, err = env.BuildGroup(supsub.Sup, supOpts, opts); err != nil {
			return nil, err
		}
		if !charBox {
			supShift = bm.Height - supOpts.FontMetrics().SupDrop*supOpts.SizeMultiplier()/opts.SizeMultiplier()
		}
	}
	if supsub.Sub != nil {
		subOpts := opts.HavingStyle(opts.Style().Sub())
		if sub, err = env.BuildGroup(supsub.Sub, subOpts, opts); err != nil {
			return nil, err
		}
		if !charBox {
			subShift = bm.Depth + subOpts.FontMetrics().SubDrop*subOpts.SizeMultiplier()/opts.SizeMultiplier()
		}
	}
	var minSupShift float64
	switch {
	case opts.Style() == mathstyle.Display:
		minSupShift = metrics.Sup1
	case opts.Style().IsCramped():
		minSupShift = metrics.Sup3
	default:
		minSupShift = metrics.Sup2
	}
	// scripts are followed by \scriptspace (0.5pt)
	marginRight := rnode.SomeEm(0.5 / metrics.PtPerEm / opts.SizeMultiplier())
	var marginLeft rnode.EmT
	if sym, ok := base.(*rnode.Symbol); ok && sub != nil {
		marginLeft = rnode.SomeEm(-sym.Italic)
	}
	var scripts *rnode.Span
	switch {
	case sup != nil && sub != nil:
		supm, subm := sup.Metrics(), sub.Metrics()
		supShift = max(supShift, minSupShift, supm.Depth+0.25*metrics.XHeight)
		subShift = max(subShift, metrics.Sub2)
		gap := 4 * metrics.DefaultRuleThickness
		if (supShift-supm.Depth)-(subm.Height-subShift) < gap {
			subShift = gap - (supShift - supm.Depth) + subm.Height
			if psi := 0.8*metrics.XHeight - (supShift - supm.Depth); psi > 0 {
				supShift += psi
				subShift -= psi
			}
		}
		scripts = makeVList([]vlistChild{
			{node: sub, shift: subShift, marginLeft: marginLeft, marginRight: marginRight},
			{node: sup, shift: -supShift, marginRight: marginRight},
		})
	case sub != nil:
		subShift = max(subShift, metrics.Sub1, sub.Metrics().Height-0.8*metrics.XHeight)
		scripts = makeVList([]vlistChild{
			{node: sub, shift: subShift, marginLeft: marginLeft, marginRight: marginRight},
		})
	case sup != nil:
		supShift = max(supShift, minSupShift, sup.Metrics().Depth+0.25*metrics.XHeight)
		scripts = makeVList([]vlistChild{
			{node: sup, shift: -supShift, marginRight: marginRight},
		})
	default:
		return base, nil
	}
	class := typeOfNode(base, rightSide)
	if class == "" {
		class = rnode.MOrd
	}
	msupsub := MakeSpan([]rnode.Class{rnode.MSupSub}, []rnode.Node{scripts}, nil)
	return MakeSpan([]rnode.Class{class}, []rnode.Node{base, msupsub}, opts), nil
}

// buildLimits sets the scripts of a display operator above and below it.
func (env *Environment) buildLimits(op *parsenode.Op, supsub *parsenode.SupSub,
	opts *mathstyle.Options) (rnode.Node, error) {
	//
	base, err := env.BuildGroup(op, opts, nil)
	if err != nil {
		return nil, err
	}
	metrics := opts.FontMetrics()
	bm := base.Metrics()
	baseShift := bm.Style.Top.Unwrap()
	var slant float64
	if sym, ok := base.(*rnode.Symbol); ok {
		slant = sym.Italic
	}
	children := []vlistChild{{node: base}}
	if supsub.Sup != nil {
		supOpts := opts.HavingStyle(opts.Style().Sup())
		sup, err := env.BuildGroup(supsub.Sup, supOpts, opts)
		if err != nil {
			return nil, err
		}
		sm := sup.Metrics()
		kern := max(metrics.BigOpSpacing1, metrics.BigOpSpacing3-sm.Depth)
		shift := -(bm.Height - baseShift + kern + sm.Depth)
		children = append(children,
			vlistChild{node: sup, shift: shift, marginLeft: rnode.SomeEm(slant / 2)},
			vlistChild{node: kernBox(-shift + sm.Height + metrics.BigOpSpacing5)})
	}
	if supsub.Sub != nil {
		subOpts := opts.HavingStyle(opts.Style().Sub())
		sub, err := env.BuildGroup(supsub.Sub, subOpts, opts)
		if err != nil {
			return nil, err
		}
		sm := sub.Metrics()
		kern := max(metrics.BigOpSpacing2, metrics.BigOpSpacing4-sm.Height)
		shift := bm.Depth + baseShift + kern + sm.Height
		padding := rnode.NewSpan(nil)
		padding.Depth = shift + sm.Depth + metrics.BigOpSpacing5
		children = append(children,
			vlistChild{node: sub, shift: shift, marginLeft: rnode.SomeEm(-slant / 2)},
			vlistChild{node: padding})
	}
	// the base carries its own shift inside the list
	bm.Style.Top = rnode.Em()
	children[0].shift = baseShift
	vlist := makeVList(children)
	return MakeSpan([]rnode.Class{rnode.MOp, rnode.OpLimits}, []rnode.Node{vlist}, opts), nil
}

// --- Accents and lines -----------------------------------------------------

func buildAccent(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	accent, ok := node.(*parsenode.Accent)
	if !ok {
		return nil, core.UnexpectedNodeShape("accent", node)
	}
	body, err := env.BuildGroup(accent.Body, opts.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	var skew float64
	if sym, ok := body.(*rnode.Symbol); ok && isCharacterBox(accent.Body) {
		skew = sym.Skew
	}
	bm := body.Metrics()
	clearance := min(bm.Height, opts.FontMetrics().XHeight)
	var accentNode rnode.Node
	if accent.Label == "\\vec" {
		path, err := StaticPath("vec", opts)
		if err != nil {
			return nil, err
		}
		accentNode = path
	} else {
		if _, ok := env.symbols.Lookup(symbols.Math, accent.Label); !ok {
			return nil, core.Error(core.EINVALID, "unknown accent %q", accent.Label)
		}
		sym, err := env.MakeSymbol(accent.Label, "Main-Regular", symbols.Math, opts)
		if err != nil {
			return nil, err
		}
		sym.Italic = 0
		accentNode = sym
	}
	accentBody := MakeSpan([]rnode.Class{rnode.AccentBody}, []rnode.Node{accentNode}, nil)
	vlist := makeVList([]vlistChild{
		{node: body},
		{node: accentBody, shift: -(bm.Height - clearance), marginLeft: rnode.SomeEm(2 * skew)},
	})
	return MakeSpan([]rnode.Class{rnode.MOrd, rnode.Accent}, []rnode.Node{vlist}, opts), nil
}

func buildOverline(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	overline, ok := node.(*parsenode.Overline)
	if !ok {
		return nil, core.UnexpectedNodeShape("overline", node)
	}
	inner, err := env.BuildGroup(overline.Body, opts.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	line := MakeLineSpan(rnode.OverlineLine, opts, 0)
	t := line.Height
	im := inner.Metrics()
	// line at 3t above the body, plus 1t of space above the line
	vlist := makeVList([]vlistChild{
		{node: inner},
		{node: line, shift: -(im.Height + 3*t)},
		{node: kernBox(im.Height + 5*t)},
	})
	return MakeSpan([]rnode.Class{rnode.MOrd, rnode.Overline}, []rnode.Node{vlist}, opts), nil
}

// --- Operators -------------------------------------------------------------

// noSizeSymbols are operators which do not grow in display style.
var noSizeSymbols = map[string]bool{"\\smallint": true}

// buildOp builds a large operator or a named operator like \sin.
// Symbol operators are set from the Size1 font, or the Size2 font in
// display style, and centered on the math axis by a vertical shift.
func buildOp(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	op, ok := node.(*parsenode.Op)
	if !ok {
		return nil, core.UnexpectedNodeShape("op", node)
	}
	var base rnode.Node
	shiftable := false
	switch {
	case op.Symbol:
		large := opts.Style().Size() == mathstyle.Display.Size() && !noSizeSymbols[op.Name]
		fontName, sizeClass, variant := "Size1-Regular", rnode.SmallOp, "1"
		if large {
			fontName, sizeClass, variant = "Size2-Regular", rnode.LargeOp, "2"
		}
		name, oval := op.Name, ""
		switch op.Name {
		case "\\oiint":
			name, oval = "\\iint", "oiintSize"+variant
		case "\\oiiint":
			name, oval = "\\iiint", "oiiintSize"+variant
		}
		sym, err := env.MakeSymbol(name, fontName, symbols.Math, opts,
			rnode.MOp, rnode.OpSymbol, sizeClass)
		if err != nil {
			return nil, err
		}
		base, shiftable = sym, true
		if oval != "" {
			path, err := StaticPath(oval, opts)
			if err != nil {
				return nil, err
			}
			ovalShift := 0.0
			if large {
				ovalShift = 0.08
			}
			vlist := makeVList([]vlistChild{{node: sym}, {node: path, shift: ovalShift}})
			base = MakeSpan([]rnode.Class{rnode.MOp}, []rnode.Node{vlist}, opts)
		}
	case len(op.Body) > 0:
		inner, err := env.BuildExpression(op.Body, opts, true)
		if err != nil {
			return nil, err
		}
		if len(inner) == 1 {
			if sym, ok := inner[0].(*rnode.Symbol); ok {
				if c, ok := sym.Classes.AtomClass(); ok {
					sym.Classes.Replace(c, rnode.MOp)
				} else {
					sym.Classes.Add(rnode.MOp)
				}
				base, shiftable = sym, true
				break
			}
		}
		if base == nil {
			base = MakeSpan([]rnode.Class{rnode.MOp}, TryCombineChars(inner), opts)
		}
	default:
		name := strings.TrimPrefix(op.Name, "\\")
		var letters []rnode.Node
		for _, r := range name {
			sym, err := env.MathSym(string(r), op.Mode(), opts)
			if err != nil {
				return nil, err
			}
			letters = append(letters, sym)
		}
		base = MakeSpan([]rnode.Class{rnode.MOp}, TryCombineChars(letters), opts)
	}
	if shiftable {
		bm := base.Metrics()
		baseShift := (bm.Height-bm.Depth)/2 - opts.FontMetrics().AxisHeight
		if baseShift != 0 {
			bm.Style.Top = rnode.SomeEm(baseShift)
		}
	}
	return base, nil
}
