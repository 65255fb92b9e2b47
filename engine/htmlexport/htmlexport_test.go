package htmlexport

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core/font"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathbuild"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.html")
	defer teardown()
	//
	x := rnode.NewSymbol("x", 0.43, 0, 0.02, 0, 0.57, rnode.MOrd, rnode.MathDefault)
	x.Style.Color = "red"
	s, err := String(x)
	require.NoError(t, err)
	assert.Equal(t, `<span class="mord mathdefault" style="color: red; margin-right: 0.02em;">x</span>`, s)
}

func TestExportNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.html")
	defer teardown()
	//
	sup := rnode.NewSpan(nil, rnode.NewSymbol("2", 0.45, 0, 0, 0, 0.35, rnode.MOrd))
	sup.Style.Top = rnode.SomeEm(-0.36)
	vlist := rnode.NewSpan(rnode.NewClassSet(rnode.VList), sup)
	root := Export(rnode.NewSpan(rnode.NewClassSet(rnode.MSupSub), vlist))
	found, err := Select(root, ".msupsub > .vlist > span")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "2", Text(found[0]))
	decls, err := ParseStyle(found[0])
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "position", decls[0].Property)
	assert.Equal(t, "top", decls[1].Property)
	assert.Equal(t, "-0.36em", decls[1].Value)
	_, err = Select(root, "span[")
	assert.Error(t, err)
}

func TestExportStaticPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.html")
	defer teardown()
	//
	vec, err := mathbuild.StaticPath("vec", mathstyle.DefaultOptions())
	require.NoError(t, err)
	s, err := String(vec)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, `<span class="overlay"`), s)
	assert.Contains(t, s, `<svg xmlns="http://www.w3.org/2000/svg" width="0.471em" height="0.714em" viewBox="0 0 `)
	assert.Contains(t, s, `preserveAspectRatio="xMinYMin">`)
	assert.Contains(t, s, `<path d="M`)
}

func TestExportFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.html")
	defer teardown()
	//
	mt := font.NewMetricTables()
	for _, r := range "xy" {
		mt.Add("Math-Italic", r, font.CharacterMetrics{Height: 0.43, Width: 0.5})
	}
	mt.Add("Main-Regular", '+', font.CharacterMetrics{Height: 0.58, Depth: 0.08, Width: 0.78})
	env := mathbuild.NewEnvironmentBuilder(nil).WithMetrics(mt).Environment()
	formula := []parsenode.Node{
		&parsenode.MathOrd{Base: parsenode.InMath, Text: "x"},
		&parsenode.Atom{Base: parsenode.InMath, Family: symbols.Bin, Text: "+"},
		&parsenode.MathOrd{Base: parsenode.InMath, Text: "y"},
	}
	chunks, err := env.BuildHTML(formula, nil)
	require.NoError(t, err)
	root := ExportAll(chunks)
	assert.Equal(t, "x+y", Text(root))
	bins, err := Select(root, "span.mbin")
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, "+", Text(bins[0]))
	struts, err := Select(root, ".formula > .base > .strut")
	require.NoError(t, err)
	assert.Len(t, struts, len(chunks))
}
