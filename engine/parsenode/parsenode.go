/*
Package parsenode defines the input of the math layout engine: the nodes of a
parsed formula.

Formulas arrive as trees of parse nodes, produced by a parser outside of this
module or decoded from JSON. Every node has a type tag and a mode (math or
text). The set of node kinds is closed; formulas needing other kinds use
Custom nodes, which are built by builders registered with the engine.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsenode

import (
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/symbols"
)

// NodeType is the type tag of a parse node.
type NodeType string

// Node types known to the engine
const (
	TypeMathOrd  NodeType = "mathord"
	TypeTextOrd  NodeType = "textord"
	TypeAtom     NodeType = "atom"
	TypeOp       NodeType = "op"
	TypeOrdGroup NodeType = "ordgroup"
	TypeColor    NodeType = "color"
	TypeSizing   NodeType = "sizing"
	TypeStyling  NodeType = "styling"
	TypeFont     NodeType = "font"
	TypeText     NodeType = "text"
	TypeKern     NodeType = "kern"
	TypeSpacing  NodeType = "spacing"
	TypeNewline  NodeType = "newline"
	TypeSupSub   NodeType = "supsub"
	TypeAccent   NodeType = "accent"
	TypeRule     NodeType = "rule"
	TypeOverline NodeType = "overline"
)

// Node is a node of a parsed formula.
type Node interface {
	Type() NodeType
	Mode() symbols.Mode
}

// Base holds the mode of a node and is embedded in all node kinds.
type Base struct {
	NodeMode symbols.Mode
}

// Mode is part of interface Node.
func (b Base) Mode() symbols.Mode { return b.NodeMode }

// InMath and InText are bases for nodes in math and text mode.
var (
	InMath = Base{NodeMode: symbols.Math}
	InText = Base{NodeMode: symbols.Text}
)

// MathOrd is an ordinary symbol in math mode, usually a variable.
type MathOrd struct {
	Base
	Text string
}

// TextOrd is an ordinary symbol like a digit or a text character.
type TextOrd struct {
	Base
	Text string
}

// Atom is a symbol of a specific atom family: bin, rel, open, close, punct
// or inner.
type Atom struct {
	Base
	Family symbols.Group
	Text   string
}

// Op is a large operator like \sum or a named operator like \sin.
// Symbol operators are looked up by Name; named operators are typeset as
// text from Name (without the leading backslash) or from Body.
type Op struct {
	Base
	Name   string
	Symbol bool
	Limits bool
	Body   []Node
}

// OrdGroup is a braced group.
type OrdGroup struct {
	Base
	Body []Node
}

// Color sets the color of its body.
type Color struct {
	Base
	Color string
	Body  []Node
}

// Sizing sets the size index (1…11) of its body.
type Sizing struct {
	Base
	Size int
	Body []Node
}

// Styling sets the math style ("display", "text", "script", "scriptscript")
// of its body.
type Styling struct {
	Base
	Style string
	Body  []Node
}

// Font sets the math font (e.g. "mathbf", "boldsymbol") of its body.
type Font struct {
	Base
	Font string
	Body Node
}

// Text switches to text mode. Font may name a text family, weight or shape
// command (e.g. "\\textrm", "\\textbf", "\\textit"), or be empty.
type Text struct {
	Base
	Font string
	Body []Node
}

// Kern is explicit glue of a given width.
type Kern struct {
	Base
	Dimension dimen.Measurement
}

// Spacing is a space character or a break control: " ", "\\ ", "~",
// "\\space", "\\nobreakspace", "\\nobreak" or "\\allowbreak".
type Spacing struct {
	Base
	Text string
}

// Newline is a forced line break.
type Newline struct {
	Base
}

// SupSub attaches a superscript and/or a subscript to a nucleus.
// All three parts are optional.
type SupSub struct {
	Base
	Nucleus Node
	Sup     Node
	Sub     Node
}

// Accent puts an accent (e.g. "\\hat", "\\vec") over its body.
type Accent struct {
	Base
	Label string
	Body  Node
}

// Rule is a filled rectangle, optionally shifted up.
type Rule struct {
	Base
	Width  dimen.Measurement
	Height dimen.Measurement
	Shift  dimen.Measurement
}

// Overline draws a line over its body.
type Overline struct {
	Base
	Body Node
}

// Custom is a node of a kind unknown to the engine. It needs a builder
// registered for Kind.
type Custom struct {
	Base
	Kind   NodeType
	Fields map[string]interface{}
	Body   []Node
}

// Type implementations of interface Node.

func (*MathOrd) Type() NodeType  { return TypeMathOrd }
func (*TextOrd) Type() NodeType  { return TypeTextOrd }
func (*Atom) Type() NodeType     { return TypeAtom }
func (*Op) Type() NodeType       { return TypeOp }
func (*OrdGroup) Type() NodeType { return TypeOrdGroup }
func (*Color) Type() NodeType    { return TypeColor }
func (*Sizing) Type() NodeType   { return TypeSizing }
func (*Styling) Type() NodeType  { return TypeStyling }
func (*Font) Type() NodeType     { return TypeFont }
func (*Text) Type() NodeType     { return TypeText }
func (*Kern) Type() NodeType     { return TypeKern }
func (*Spacing) Type() NodeType  { return TypeSpacing }
func (*Newline) Type() NodeType  { return TypeNewline }
func (*SupSub) Type() NodeType   { return TypeSupSub }
func (*Accent) Type() NodeType   { return TypeAccent }
func (*Rule) Type() NodeType     { return TypeRule }
func (*Overline) Type() NodeType { return TypeOverline }
func (c *Custom) Type() NodeType { return c.Kind }

// Ord returns the text of ordinary nodes (MathOrd, TextOrd), for use by
// ord builders.
func Ord(n Node) (string, bool) {
	switch o := n.(type) {
	case *MathOrd:
		return o.Text, true
	case *TextOrd:
		return o.Text, true
	}
	return "", false
}
