package mathbuild

import (
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// BuildExpression builds a list of parse nodes into a horizontal list of
// render nodes. Fragments are flattened into the list, so the result never
// contains a Fragment.
//
// isRealGroup is true for genuine groups, i.e. lists nothing will be added
// to on either side. For partial groups (e.g. the body of a color command)
// binary operators at the boundaries are left alone and no glue is
// inserted; this is done when the enclosing group is assembled.
func (env *Environment) BuildExpression(expression []parsenode.Node, opts *mathstyle.Options,
	isRealGroup bool) ([]rnode.Node, error) {
	//
	raw := make([]rnode.Node, 0, len(expression))
	for _, expr := range expression {
		group, err := env.BuildGroup(expr, opts, nil)
		if err != nil {
			return nil, err
		}
		if f, ok := group.(*rnode.Fragment); ok {
			raw = append(raw, f.Children...)
		} else {
			raw = append(raw, group)
		}
	}
	nonSpaces := nonSpaceNodes(raw)
	cancelBins(nonSpaces, isRealGroup)
	if !isRealGroup {
		return raw, nil
	}
	glueOpts := opts
	if len(expression) == 1 {
		switch x := expression[0].(type) {
		case *parsenode.Sizing:
			glueOpts = opts.HavingSize(x.Size)
		case *parsenode.Styling:
			if style, ok := mathstyle.StyleByName(x.Style); ok {
				glueOpts = opts.HavingStyle(style)
			}
		}
	}
	return insertSpacing(raw, nonSpaces, glueOpts)
}

func isSpace(n rnode.Node) bool {
	return n.Metrics().HasClass(rnode.MSpace)
}

// nonSpaceNodes filters out explicit glue. Explicit glue does not take part
// in bin cancellation or in selecting implicit spacing.
func nonSpaceNodes(nodes []rnode.Node) []rnode.Node {
	nonSpaces := make([]rnode.Node, 0, len(nodes))
	for _, n := range nodes {
		if !isSpace(n) {
			nonSpaces = append(nonSpaces, n)
		}
	}
	return nonSpaces
}

type side int

const (
	leftSide side = iota
	rightSide
)

// outermostNode descends into fragments, down to the leftmost or rightmost
// leaf.
func outermostNode(n rnode.Node, s side) rnode.Node {
	for {
		f, ok := n.(*rnode.Fragment)
		if !ok || len(f.Children) == 0 {
			return n
		}
		if s == rightSide {
			n = f.Children[len(f.Children)-1]
		} else {
			n = f.Children[0]
		}
	}
}

// atomClasses is the order in which a node's classes are searched for its
// atom class.
var atomClasses = []rnode.Class{
	rnode.MOrd, rnode.MOp, rnode.MBin, rnode.MRel,
	rnode.MOpen, rnode.MClose, rnode.MPunct, rnode.MInner,
}

// typeOfNode returns the atom class of the outermost node on side s, or ""
// if there is none.
func typeOfNode(n rnode.Node, s side) rnode.Class {
	if n == nil {
		return ""
	}
	outer := outermostNode(n, s).Metrics()
	for _, c := range atomClasses {
		if outer.HasClass(c) {
			return c
		}
	}
	return ""
}

// isBinLeftCanceller is true if a binary operator right of n is to be
// turned into an ordinary. n == nil denotes the start of the list.
func isBinLeftCanceller(n rnode.Node, isRealGroup bool) bool {
	if n == nil {
		return isRealGroup
	}
	switch typeOfNode(n, rightSide) {
	case rnode.MBin, rnode.MOpen, rnode.MRel, rnode.MOp, rnode.MPunct:
		return true
	}
	return false
}

// isBinRightCanceller is true if a binary operator left of n is to be
// turned into an ordinary. n == nil denotes the end of the list.
func isBinRightCanceller(n rnode.Node, isRealGroup bool) bool {
	if n == nil {
		return isRealGroup
	}
	switch typeOfNode(n, leftSide) {
	case rnode.MRel, rnode.MClose, rnode.MPunct:
		return true
	}
	return false
}

// cancelBins turns binary operators into ordinaries where they have no left
// or no right operand (TeXbook, p. 442, rules 5 and 6). Nodes are changed
// in place, from left to right, so a cancelled node is an ordinary when its
// right neighbour is checked.
func cancelBins(nonSpaces []rnode.Node, isRealGroup bool) {
	neighbour := func(i int) rnode.Node {
		if i < 0 || i >= len(nonSpaces) {
			return nil
		}
		return nonSpaces[i]
	}
	for i, n := range nonSpaces {
		left := outermostNode(n, leftSide).Metrics()
		if left.HasClass(rnode.MBin) && isBinLeftCanceller(neighbour(i-1), isRealGroup) {
			tracer().Debugf("bin cancelled at start of %s", rnode.String(n))
			left.Classes.Replace(rnode.MBin, rnode.MOrd)
		}
		right := outermostNode(n, rightSide).Metrics()
		if right.HasClass(rnode.MBin) && isBinRightCanceller(neighbour(i+1), isRealGroup) {
			tracer().Debugf("bin cancelled at end of %s", rnode.String(n))
			right.Classes.Replace(rnode.MBin, rnode.MOrd)
		}
	}
}

// isLeftTight is true if the leftmost leaf of n is set in a script style.
func isLeftTight(n rnode.Node) bool {
	return outermostNode(n, leftSide).Metrics().HasClass(rnode.MTight)
}

// insertSpacing inserts glue between adjacent non-space nodes. Glue is
// placed immediately after the left node, in front of any explicit glue
// following it.
func insertSpacing(raw, nonSpaces []rnode.Node, opts *mathstyle.Options) ([]rnode.Node, error) {
	groups := make([]rnode.Node, 0, 2*len(raw))
	next := 0 // position in nonSpaces of the next non-space node in raw
	for _, n := range raw {
		groups = append(groups, n)
		if isSpace(n) {
			continue
		}
		left := nonSpaces[next]
		next++
		if next == len(nonSpaces) {
			continue
		}
		right := nonSpaces[next]
		lclass, rclass := typeOfNode(left, rightSide), typeOfNode(right, leftSide)
		if lclass == "" || rclass == "" {
			continue
		}
		var space dimen.Measurement
		var ok bool
		if isLeftTight(right) {
			space, ok = GetTightSpacing(lclass, rclass)
		} else {
			space, ok = GetSpacing(lclass, rclass)
		}
		if !ok {
			continue
		}
		glue, err := MakeGlue(space, opts)
		if err != nil {
			return nil, err
		}
		groups = append(groups, glue)
	}
	return groups, nil
}

// --- Spacing tables --------------------------------------------------------

var (
	thinSpace   = dimen.Mu(3)
	mediumSpace = dimen.Mu(4)
	thickSpace  = dimen.Mu(5)
)

// spacings for display and text styles.
var spacings = map[rnode.Class]map[rnode.Class]dimen.Measurement{
	rnode.MOrd: {
		rnode.MOp:    thinSpace,
		rnode.MBin:   mediumSpace,
		rnode.MRel:   thickSpace,
		rnode.MInner: thinSpace,
	},
	rnode.MOp: {
		rnode.MOrd:   thinSpace,
		rnode.MOp:    thinSpace,
		rnode.MRel:   thickSpace,
		rnode.MInner: thinSpace,
	},
	rnode.MBin: {
		rnode.MOrd:   mediumSpace,
		rnode.MOp:    mediumSpace,
		rnode.MOpen:  mediumSpace,
		rnode.MInner: mediumSpace,
	},
	rnode.MRel: {
		rnode.MOrd:   thickSpace,
		rnode.MOp:    thickSpace,
		rnode.MOpen:  thickSpace,
		rnode.MInner: thickSpace,
	},
	rnode.MOpen: {},
	rnode.MClose: {
		rnode.MOp:    thinSpace,
		rnode.MBin:   mediumSpace,
		rnode.MRel:   thickSpace,
		rnode.MInner: thinSpace,
	},
	rnode.MPunct: {
		rnode.MOrd:   thinSpace,
		rnode.MOp:    thinSpace,
		rnode.MRel:   thickSpace,
		rnode.MOpen:  thinSpace,
		rnode.MClose: thinSpace,
		rnode.MPunct: thinSpace,
		rnode.MInner: thinSpace,
	},
	rnode.MInner: {
		rnode.MOrd:   thinSpace,
		rnode.MOp:    thinSpace,
		rnode.MBin:   mediumSpace,
		rnode.MRel:   thickSpace,
		rnode.MOpen:  thinSpace,
		rnode.MPunct: thinSpace,
		rnode.MInner: thinSpace,
	},
}

// tightSpacings for script and scriptscript styles.
var tightSpacings = map[rnode.Class]map[rnode.Class]dimen.Measurement{
	rnode.MOrd:   {rnode.MOp: thinSpace},
	rnode.MOp:    {rnode.MOrd: thinSpace, rnode.MOp: thinSpace},
	rnode.MClose: {rnode.MOp: thinSpace},
	rnode.MInner: {rnode.MOp: thinSpace},
}

// GetSpacing returns the glue between atoms of class left and right in
// display and text style. If no glue is to be inserted, ok is false.
func GetSpacing(left, right rnode.Class) (space dimen.Measurement, ok bool) {
	space, ok = spacings[left][right]
	return
}

// GetTightSpacing returns the glue between atoms of class left and right in
// script and scriptscript style. If no glue is to be inserted, ok is false.
func GetTightSpacing(left, right rnode.Class) (space dimen.Measurement, ok bool) {
	switch left {
	case rnode.MBin, rnode.MRel, rnode.MOpen, rnode.MPunct:
		return dimen.Measurement{}, false
	}
	space, ok = tightSpacings[left][right]
	return
}

// --- Symbol combination ----------------------------------------------------

// TryCombineChars merges adjacent symbols with equal classes, skew, max font
// size and style into a single symbol. The merged symbol has the larger
// height and depth of the two and the italic correction of the second one.
// Symbols are changed in place; the returned list may be shorter than chars.
func TryCombineChars(chars []rnode.Node) []rnode.Node {
	if len(chars) < 2 {
		return chars
	}
	combined := make([]rnode.Node, 0, len(chars))
	combined = append(combined, chars[0])
	for _, n := range chars[1:] {
		prev, ok1 := combined[len(combined)-1].(*rnode.Symbol)
		next, ok2 := n.(*rnode.Symbol)
		if ok1 && ok2 && canCombine(prev, next) {
			prev.Text += next.Text
			prev.Height = max(prev.Height, next.Height)
			prev.Depth = max(prev.Depth, next.Depth)
			prev.Italic = next.Italic
			prev.Width += next.Width
			continue
		}
		combined = append(combined, n)
	}
	return combined
}

func canCombine(prev, next *rnode.Symbol) bool {
	return prev.Classes.Equal(next.Classes) &&
		prev.Skew == next.Skew &&
		prev.MaxFontSize == next.MaxFontSize &&
		prev.Style == next.Style
}
