package rnode

import (
	"fmt"
	"math"
	"strings"
)

// Node is a node of a render tree.
type Node interface {
	Metrics() *Box // common box properties, mutable
}

// Box holds the properties common to all render nodes.
type Box struct {
	Classes     ClassSet
	Style       Style
	Height      float64 // above the baseline, in em
	Depth       float64 // below the baseline, in em
	MaxFontSize float64 // maximum size multiplier of contained glyphs
}

// Metrics is part of interface Node.
func (b *Box) Metrics() *Box {
	return b
}

// HasClass is true if the box carries class c.
func (b *Box) HasClass(c Class) bool {
	return b.Classes.Has(c)
}

// Children returns the children of container nodes, or nil for leaves.
func Children(n Node) []Node {
	switch c := n.(type) {
	case *Span:
		return c.Children
	case *PathSpan:
		return c.Children
	case *Fragment:
		return c.Children
	}
	return nil
}

// sizeFromChildren sets height, depth and maxFontSize of a box to the
// maximum over its children. A child shifted by a style offset Top is
// measured at its shifted position. Height and depth are never negative;
// without children all three are 0.
func sizeFromChildren(b *Box, children []Node) {
	b.Height, b.Depth, b.MaxFontSize = 0, 0, 0
	for _, ch := range children {
		m := ch.Metrics()
		shift := m.Style.Top.Unwrap()
		b.Height = math.Max(b.Height, m.Height-shift)
		b.Depth = math.Max(b.Depth, m.Depth+shift)
		b.MaxFontSize = math.Max(b.MaxFontSize, m.MaxFontSize)
	}
}

// --- Span ------------------------------------------------------------------

// Span is a general container.
type Span struct {
	Box
	Children []Node
}

// NewSpan creates a span with classes and children, sized from its children.
func NewSpan(classes ClassSet, children ...Node) *Span {
	s := &Span{Box: Box{Classes: NewClassSet(classes...)}}
	s.SetChildren(children...)
	return s
}

// SetChildren replaces the children of s and re-sizes s.
func (s *Span) SetChildren(children ...Node) {
	s.Children = children
	sizeFromChildren(&s.Box, s.Children)
}

// Append adds children at the end of s and re-sizes s.
func (s *Span) Append(children ...Node) {
	s.SetChildren(append(s.Children, children...)...)
}

// Prepend adds a child at the front of s and re-sizes s.
func (s *Span) Prepend(child Node) {
	s.SetChildren(append([]Node{child}, s.Children...)...)
}

// --- Fragment --------------------------------------------------------------

// Fragment is a transient sequence of nodes, to be flattened into its
// enclosing expression.
type Fragment struct {
	Box
	Children []Node
}

// NewFragment creates a fragment, sized from its children.
func NewFragment(children ...Node) *Fragment {
	f := &Fragment{Children: children}
	sizeFromChildren(&f.Box, children)
	return f
}

// --- Symbol ----------------------------------------------------------------

// Symbol is a leaf holding text in a single font.
type Symbol struct {
	Box
	Text   string
	Italic float64 // italic correction, in em
	Skew   float64 // skew for accent placement, in em
	Width  float64 // advance width, in em
}

// NewSymbol creates a symbol leaf.
func NewSymbol(text string, height, depth, italic, skew, width float64, classes ...Class) *Symbol {
	return &Symbol{
		Box: Box{
			Classes: NewClassSet(classes...),
			Height:  height,
			Depth:   depth,
		},
		Text:   text,
		Italic: italic,
		Skew:   skew,
		Width:  width,
	}
}

// --- Paths -----------------------------------------------------------------

// Path is a named vector path. Data holds SVG path commands in the
// coordinates of the enclosing holder's view box.
type Path struct {
	Name string
	Data string
}

// ViewBox is the coordinate system of a path holder.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

func (vb ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.MinX, vb.MinY, vb.Width, vb.Height)
}

// PathHolder is a leaf holding vector paths, drawn into a viewport of
// Width × Height em.
type PathHolder struct {
	Box
	Paths               []*Path
	Width, Height       EmT
	ViewBox             ViewBox
	PreserveAspectRatio string
}

// PathSpan is a container for path holders.
type PathSpan struct {
	Box
	Children []Node
}

// NewPathSpan creates a container for path holders, sized from its children.
func NewPathSpan(classes ClassSet, children ...Node) *PathSpan {
	ps := &PathSpan{Box: Box{Classes: NewClassSet(classes...)}, Children: children}
	sizeFromChildren(&ps.Box, children)
	return ps
}

// --- Debugging -------------------------------------------------------------

// String returns a one-line description of a node.
func String(n Node) string {
	m := n.Metrics()
	kind := "?"
	switch x := n.(type) {
	case *Span:
		kind = "span"
	case *Fragment:
		kind = "fragment"
	case *PathSpan:
		kind = "pathspan"
	case *PathHolder:
		kind = "paths"
	case *Symbol:
		kind = fmt.Sprintf("symbol %q", x.Text)
	}
	return fmt.Sprintf("%s[%s] h=%.3f d=%.3f", kind, m.Classes, m.Height, m.Depth)
}

// Dump returns an indented multi-line description of a render tree.
func Dump(n Node) string {
	var b strings.Builder
	var dump func(Node, int)
	dump = func(n Node, level int) {
		b.WriteString(strings.Repeat("  ", level))
		b.WriteString(String(n))
		b.WriteByte('\n')
		for _, ch := range Children(n) {
			dump(ch, level+1)
		}
	}
	dump(n, 0)
	return b.String()
}

// Walk visits n and all of its descendants in depth-first pre-order,
// until visit returns false.
func Walk(n Node, visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, ch := range Children(n) {
		if !Walk(ch, visit) {
			return false
		}
	}
	return true
}
