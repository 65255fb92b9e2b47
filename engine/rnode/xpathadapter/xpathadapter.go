/*
Package xpathadapter implements an xpath.NodeNavigator for render trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

Render nodes appear as elements named after their kind: "span",
"fragment", "pathspan", "paths" and "symbol". Every element carries the
attributes "class", "height" and "depth"; symbols additionally carry
"width" and "italic". The string value of a symbol is its text, the string
value of a container is the text of all symbols below it. A virtual root
node sits above the root of the render tree, so absolute paths start with
the kind of the render root, e.g.

	/span/span[contains(@class,'mbin')]

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"strconv"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/rnode"
)

// tracer traces with key 'tymath.rnode'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.rnode")
}

// step is a node on the path from the root, with its index among its
// siblings.
type step struct {
	node  rnode.Node
	index int
}

// NodeNavigator navigates a render tree. Render nodes do not know their
// parents, so the navigator keeps the path from the root to the current node.
type NodeNavigator struct {
	root rnode.Node
	path []step // empty: at the virtual root
	attr int    // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for a render tree.
func NewNavigator(root rnode.Node) *NodeNavigator {
	return &NodeNavigator{root: root, attr: -1}
}

// CurrentNode returns the render node a navigator is positioned on. At the
// virtual root it returns nil.
func CurrentNode(nav xpath.NodeNavigator) (rnode.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, core.Error(core.EINVALID, "navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current(), nil
}

func (nav *NodeNavigator) current() rnode.Node {
	if len(nav.path) == 0 {
		return nil
	}
	return nav.path[len(nav.path)-1].node
}

// siblings returns the children of the current node's parent.
func (nav *NodeNavigator) siblings() []rnode.Node {
	if len(nav.path) <= 1 {
		return []rnode.Node{nav.root}
	}
	return rnode.Children(nav.path[len(nav.path)-2].node)
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if len(nav.path) == 0 {
		return xpath.RootNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	n := nav.current()
	if n == nil {
		return ""
	}
	if nav.attr != -1 {
		return attributes(n)[nav.attr].key
	}
	return ElementName(n)
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	n := nav.current()
	if n == nil {
		n = nav.root
	}
	if nav.attr != -1 {
		return attributes(n)[nav.attr].val
	}
	return innerText(n)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = append([]step(nil), nav.path...)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:0]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if len(nav.path) == 0 {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	n := nav.current()
	if n == nil || nav.attr >= len(attributes(n))-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if len(nav.path) == 0 {
		nav.path = append(nav.path, step{nav.root, 0})
		return true
	}
	children := rnode.Children(nav.current())
	if len(children) == 0 {
		return false
	}
	nav.path = append(nav.path, step{children[0], 0})
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || len(nav.path) == 0 || nav.path[len(nav.path)-1].index == 0 {
		return false
	}
	nav.path[len(nav.path)-1] = step{nav.siblings()[0], 0}
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	sibs := nav.siblings()
	i := nav.path[len(nav.path)-1].index + 1
	if i >= len(sibs) { // was last child of parent
		return false
	}
	nav.path[len(nav.path)-1] = step{sibs[i], i}
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	i := nav.path[len(nav.path)-1].index - 1
	if i < 0 {
		return false
	}
	nav.path[len(nav.path)-1] = step{nav.siblings()[i], i}
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.path = append(nav.path[:0], n.path...)
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// --- Elements and attributes -----------------------------------------------

// ElementName returns the element name of a render node in XPath queries.
func ElementName(n rnode.Node) string {
	switch n.(type) {
	case *rnode.Symbol:
		return "symbol"
	case *rnode.Fragment:
		return "fragment"
	case *rnode.PathSpan:
		return "pathspan"
	case *rnode.PathHolder:
		return "paths"
	}
	return "span"
}

type attribute struct {
	key, val string
}

func attributes(n rnode.Node) []attribute {
	m := n.Metrics()
	attrs := []attribute{
		{"class", m.Classes.String()},
		{"height", num(m.Height)},
		{"depth", num(m.Depth)},
	}
	if sym, ok := n.(*rnode.Symbol); ok {
		attrs = append(attrs, attribute{"width", num(sym.Width)}, attribute{"italic", num(sym.Italic)})
	}
	return attrs
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// innerText returns the text of all symbols below n.
func innerText(n rnode.Node) string {
	var b strings.Builder
	rnode.Walk(n, func(x rnode.Node) bool {
		if sym, ok := x.(*rnode.Symbol); ok {
			b.WriteString(sym.Text)
		}
		return true
	})
	return b.String()
}

// --- Queries ---------------------------------------------------------------

// Select returns the render nodes below root (including root) selected by
// an XPath expression. Selected attributes yield the nodes carrying them.
func Select(root rnode.Node, expr string) ([]rnode.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	var nodes []rnode.Node
	iter := xp.Select(NewNavigator(root))
	for iter.MoveNext() {
		n, err := CurrentNode(iter.Current())
		if err != nil {
			return nil, err
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	tracer().Debugf("XPath %q selected %d nodes", expr, len(nodes))
	return nodes, nil
}

// Evaluate evaluates an XPath expression on a render tree. The result is a
// float64, string or bool for expressions like count(//symbol), and a
// node iterator for path expressions.
func Evaluate(root rnode.Node, expr string) (interface{}, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	return xp.Evaluate(NewNavigator(root)), nil
}
