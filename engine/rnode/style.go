package rnode

import (
	"strconv"
)

// EmT is an option type for lengths in em.
type EmT struct {
	em  float64
	set bool
}

// SomeEm creates an optional length with a value of x em.
func SomeEm(x float64) EmT {
	return EmT{em: x, set: true}
}

// Em creates an optional length without a value.
func Em() EmT {
	return EmT{}
}

// IsNone returns true if o is unset.
func (o EmT) IsNone() bool {
	return !o.set
}

// Unwrap returns the underlying length of o, or 0 if o is unset.
func (o EmT) Unwrap() float64 {
	return o.em
}

// OrElse returns the length of o, or x if o is unset.
func (o EmT) OrElse(x float64) float64 {
	if !o.set {
		return x
	}
	return o.em
}

// String formats o as a CSS length, e.g. "0.25em". Unset lengths return "".
func (o EmT) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatFloat(o.em, 'f', -1, 64) + "em"
}

// Style is the style record of a render node. All lengths are in em.
// Unset fields do not influence rendering.
//
// Styles are comparable with ==.
type Style struct {
	Color             string
	BorderBottomWidth EmT
	BorderRightWidth  EmT
	BorderTopWidth    EmT
	Bottom            EmT
	Top               EmT
	MarginLeft        EmT
	MarginRight       EmT
	Height            EmT
	Width             EmT
	VerticalAlign     EmT
}

// StyleProperty is a pair of a CSS property name and its value.
type StyleProperty struct {
	Name, Value string
}

// Properties lists the set fields of a style as CSS properties, in a fixed
// order.
func (s Style) Properties() []StyleProperty {
	var props []StyleProperty
	add := func(name string, o EmT) {
		if !o.IsNone() {
			props = append(props, StyleProperty{name, o.String()})
		}
	}
	if s.Color != "" {
		props = append(props, StyleProperty{"color", s.Color})
	}
	add("border-bottom-width", s.BorderBottomWidth)
	add("border-right-width", s.BorderRightWidth)
	add("border-top-width", s.BorderTopWidth)
	add("bottom", s.Bottom)
	add("top", s.Top)
	add("margin-left", s.MarginLeft)
	add("margin-right", s.MarginRight)
	add("height", s.Height)
	add("width", s.Width)
	add("vertical-align", s.VerticalAlign)
	return props
}
