/*
Package mathdebug draws render trees with GraphViz.

ToGraphViz writes a render tree in DOT format. Symbols show their text,
containers show their classes, and every node is annotated with its height
and depth.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathdebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/rnode"
)

// tracer traces with key 'tymath.build'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.build")
}

// MaxNodes limits the number of nodes drawn.
const MaxNodes = 3000

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a render tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root rnode.Node, w io.Writer) error {
	header := template.Must(template.New("renderTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fill,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write graph header")
	}
	dict := make(map[rnode.Node]string, 256)
	if err := boxes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func boxes(n rnode.Node, w io.Writer, dict map[rnode.Node]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt > MaxNodes {
		return core.Error(core.EINVALID, "render tree too large to draw (more than %d nodes)", MaxNodes)
	}
	if err := box(n, w, dict, gparams); err != nil {
		return err
	}
	tracer().Debugf("node = %s", rnode.String(n))
	for _, child := range rnode.Children(n) {
		if err := boxes(child, w, dict, gparams); err != nil {
			return err
		}
		if err := edge(n, child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type nbox struct {
	N    rnode.Node
	Name string
}

type nedge struct {
	N1, N2 nbox
}

func box(n rnode.Node, w io.Writer, dict map[rnode.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.BoxTmpl.Execute(w, &nbox{n, name}); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot draw node %s", name)
	}
	return nil
}

func edge(n1, n2 rnode.Node, w io.Writer, dict map[rnode.Node]string, gparams *graphParamsType) error {
	e := nedge{nbox{n1, dict[n1]}, nbox{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot draw edge %s -> %s", e.N1.Name, e.N2.Name)
	}
	return nil
}

// ---------------------------------------------------------------------------

func label(n rnode.Node) string {
	m := n.Metrics()
	var head string
	switch x := n.(type) {
	case *rnode.Symbol:
		head = `\"` + shortText(x.Text) + `\"`
	case *rnode.PathHolder:
		names := make([]string, len(x.Paths))
		for i, p := range x.Paths {
			names[i] = p.Name
		}
		head = "paths " + strings.Join(names, ",")
	case *rnode.Fragment:
		head = "fragment"
	default:
		head = "span"
	}
	if len(m.Classes) > 0 {
		head += `\n` + m.Classes.String()
	}
	return fmt.Sprintf(`"%s\nh=%.3f d=%.3f"`, head, m.Height, m.Depth)
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "…"
	}
	s = strings.ReplaceAll(s, " ", "␣")
	return strings.ReplaceAll(s, `"`, `\"`)
}

func fill(n rnode.Node) string {
	switch n.(type) {
	case *rnode.Symbol:
		return "grey95"
	case *rnode.Fragment:
		return "lightyellow"
	case *rnode.PathHolder, *rnode.PathSpan:
		return "palegreen"
	}
	if n.Metrics().HasClass(rnode.MSpace) {
		return "white"
	}
	if _, ok := n.Metrics().Classes.AtomClass(); ok {
		return "lightblue2"
	}
	return "lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor={{ fill .N }} ] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
