/*
Package htmlexport converts render trees into HTML.

Every render node becomes a <span> element carrying the node's classes and
its style record as inline CSS. Path holders become inline SVG. The result
is an html.Node tree from golang.org/x/net/html, which hosts may embed into
documents of their own or serialize with Render.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlexport

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/rnode"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'tymath.html'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.html")
}

const svgNamespace = "http://www.w3.org/2000/svg"

// Export converts a render tree into a tree of HTML elements.
func Export(n rnode.Node) *html.Node {
	switch x := n.(type) {
	case *rnode.Symbol:
		return exportSymbol(x)
	case *rnode.PathHolder:
		return exportPaths(x)
	}
	h := element(atom.Span, n.Metrics().Classes, StyleDeclarations(n.Metrics().Style))
	for _, ch := range rnode.Children(n) {
		h.AppendChild(Export(ch))
	}
	return h
}

// ExportAll wraps a sequence of render nodes, e.g. the chunks of a formula,
// into a single <span class="formula"> element.
func ExportAll(nodes []rnode.Node) *html.Node {
	root := element(atom.Span, rnode.NewClassSet("formula"), nil)
	for _, n := range nodes {
		root.AppendChild(Export(n))
	}
	return root
}

func exportSymbol(sym *rnode.Symbol) *html.Node {
	decls := StyleDeclarations(sym.Style)
	if sym.Italic > 0 {
		decls = append(decls, declaration("margin-right", em(sym.Italic)))
	}
	h := element(atom.Span, sym.Classes, decls)
	h.AppendChild(&html.Node{Type: html.TextNode, Data: sym.Text})
	return h
}

func exportPaths(ph *rnode.PathHolder) *html.Node {
	svg := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: svgNamespace},
			{Key: "width", Val: ph.Width.String()},
			{Key: "height", Val: ph.Height.String()},
			{Key: "viewBox", Val: ph.ViewBox.String()},
		},
	}
	if ph.PreserveAspectRatio != "" {
		svg.Attr = append(svg.Attr, html.Attribute{Key: "preserveAspectRatio", Val: ph.PreserveAspectRatio})
	}
	for _, p := range ph.Paths {
		svg.AppendChild(&html.Node{
			Type:      html.ElementNode,
			Data:      "path",
			Namespace: "svg",
			Attr:      []html.Attribute{{Key: "d", Val: p.Data}},
		})
	}
	return svg
}

func element(a atom.Atom, classes rnode.ClassSet, decls []*css.Declaration) *html.Node {
	h := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if len(classes) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: classes.String()})
	}
	if len(decls) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: inline(decls)})
	}
	return h
}

// --- Styles ----------------------------------------------------------------

// StyleDeclarations lists the set fields of a style record as CSS
// declarations. A vertical offset makes the element relatively positioned.
func StyleDeclarations(st rnode.Style) []*css.Declaration {
	props := st.Properties()
	if len(props) == 0 {
		return nil
	}
	decls := make([]*css.Declaration, 0, len(props)+1)
	if !st.Top.IsNone() {
		decls = append(decls, declaration("position", "relative"))
	}
	for _, p := range props {
		decls = append(decls, declaration(p.Name, p.Value))
	}
	return decls
}

// InlineStyle formats a style record as the value of a style attribute.
func InlineStyle(st rnode.Style) string {
	return inline(StyleDeclarations(st))
}

func declaration(property, value string) *css.Declaration {
	return &css.Declaration{Property: property, Value: value}
}

func inline(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

func em(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "em"
}

// ParseStyle reads back the inline style of an exported element.
// Elements without a style attribute yield no declarations.
func ParseStyle(h *html.Node) ([]*css.Declaration, error) {
	for _, a := range h.Attr {
		if a.Key == "style" {
			decls, err := parser.ParseDeclarations(a.Val)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "cannot parse inline style %q", a.Val)
			}
			return decls, nil
		}
	}
	return nil, nil
}

// --- Output and queries ----------------------------------------------------

// Render writes the HTML of a render tree to w.
func Render(w io.Writer, n rnode.Node) error {
	return html.Render(w, Export(n))
}

// String returns the HTML of a render tree.
func String(n rnode.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Select returns all elements below root (including root) matching a CSS
// selector, e.g. "span.mbin" or ".msupsub > .vlist".
func Select(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	found := sel.MatchAll(root)
	tracer().Debugf("selector %q matched %d elements", selector, len(found))
	return found, nil
}

// Text returns the concatenated text content of an exported element.
func Text(h *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(h)
	return b.String()
}
