package mathbuild

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

func TestBinCancelledAtStartOfRealGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	list := must(t)(env.BuildExpression([]parsenode.Node{bin("+"), textord("2")}, env.Options(), true))
	if diff := cmp.Diff([]string{"mord", "mord"}, classSeq(list)); diff != "" {
		t.Errorf("class sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestBinCancelledAfterRelation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	expr := []parsenode.Node{mathord("x"), rel("="), bin("+"), mathord("y")}
	list := must(t)(env.BuildExpression(expr, env.Options(), true))
	want := []string{"mord", "glue", "mrel", "glue", "mord", "mord"}
	if diff := cmp.Diff(want, classSeq(list)); diff != "" {
		t.Errorf("class sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestBinBetweenOrdinaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	expr := []parsenode.Node{mathord("a"), bin("+"), mathord("b")}
	list := must(t)(env.BuildExpression(expr, env.Options(), true))
	want := []string{"mord", "glue", "mbin", "glue", "mord"}
	require.Empty(t, cmp.Diff(want, classSeq(list)))
	glue := list[1].Metrics()
	assert.InDelta(t, 4.0/18, glue.Style.MarginRight.Unwrap(), 1e-9)
}

func TestBinCancelledBeforeClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	closing := &parsenode.Atom{Base: parsenode.InMath, Family: "close", Text: ")"}
	expr := []parsenode.Node{mathord("a"), bin("+"), closing}
	list := must(t)(env.BuildExpression(expr, env.Options(), true))
	want := []string{"mord", "mord", "mclose"}
	assert.Empty(t, cmp.Diff(want, classSeq(list)))
}

func TestPartialGroupIsNotAssembled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	expr := []parsenode.Node{bin("+"), mathord("a"), rel("=")}
	list := must(t)(env.BuildExpression(expr, env.Options(), false))
	assert.Empty(t, cmp.Diff([]string{"mbin", "mord", "mrel"}, classSeq(list)))
}

func TestSpacingTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	space, ok := GetSpacing(rnode.MOrd, rnode.MBin)
	require.True(t, ok)
	assert.Equal(t, dimen.Mu(4), space)
	space, ok = GetSpacing(rnode.MOrd, rnode.MRel)
	require.True(t, ok)
	assert.Equal(t, dimen.Mu(5), space)
	space, ok = GetSpacing(rnode.MPunct, rnode.MClose)
	require.True(t, ok)
	assert.Equal(t, dimen.Mu(3), space)
	for _, c := range atomClasses {
		_, ok = GetSpacing(rnode.MOpen, c)
		assert.False(t, ok, "open followed by %s", c)
	}
	_, ok = GetSpacing(rnode.MOrd, rnode.MOrd)
	assert.False(t, ok)
	space, ok = GetTightSpacing(rnode.MOp, rnode.MOp)
	require.True(t, ok)
	assert.Equal(t, dimen.Mu(3), space)
	_, ok = GetTightSpacing(rnode.MBin, rnode.MOp)
	assert.False(t, ok)
	_, ok = GetTightSpacing(rnode.MOrd, rnode.MRel)
	assert.False(t, ok)
}

func TestGlueGoesBeforeExplicitSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	kern := &parsenode.Kern{Base: parsenode.InMath, Dimension: dimen.Mu(1)}
	expr := []parsenode.Node{mathord("a"), kern, rel("="), mathord("b")}
	list := must(t)(env.BuildExpression(expr, env.Options(), true))
	want := []string{"mord", "glue", "glue", "mrel", "glue", "mord"}
	require.Empty(t, cmp.Diff(want, classSeq(list)))
	assert.InDelta(t, 5.0/18, list[1].Metrics().Style.MarginRight.Unwrap(), 1e-9)
	assert.InDelta(t, 1.0/18, list[2].Metrics().Style.MarginRight.Unwrap(), 1e-9)
}

func TestTightSpacingInScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	opts := env.Options().HavingStyle(mathstyle.Script)
	expr := []parsenode.Node{mathord("a"), rel("="), mathord("b")}
	list := must(t)(env.BuildExpression(expr, opts, true))
	assert.Empty(t, cmp.Diff([]string{"mord", "mrel", "mord"}, classSeq(list)))
	assert.True(t, list[0].Metrics().HasClass(rnode.MTight))
}

func TestColorIsFlattened(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	color := &parsenode.Color{Base: parsenode.InMath, Color: "red",
		Body: []parsenode.Node{bin("+"), mathord("b")}}
	list := must(t)(env.BuildExpression([]parsenode.Node{mathord("a"), color}, env.Options(), true))
	want := []string{"mord", "glue", "mbin", "glue", "mord"}
	require.Empty(t, cmp.Diff(want, classSeq(list)))
	assert.Equal(t, "red", list[2].Metrics().Style.Color)
	assert.Equal(t, "", list[0].Metrics().Style.Color)
	for _, n := range list {
		_, isFragment := n.(*rnode.Fragment)
		assert.False(t, isFragment)
	}
}

func TestOutermostNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	a := rnode.NewSymbol("a", 0.4, 0, 0, 0, 0.5, rnode.MOrd)
	plus := rnode.NewSymbol("+", 0.6, 0.1, 0, 0, 0.8, rnode.MBin)
	f := rnode.NewFragment(a, rnode.NewFragment(plus))
	assert.Same(t, a, outermostNode(f, leftSide))
	assert.Same(t, plus, outermostNode(f, rightSide))
	assert.Equal(t, rnode.MBin, typeOfNode(f, rightSide))
	assert.Equal(t, rnode.Class(""), typeOfNode(nil, leftSide))
}

func TestTryCombineChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	a := rnode.NewSymbol("A", 0.68, 0, 0.01, 0, 0.75, rnode.MOrd)
	b := rnode.NewSymbol("B", 0.7, 0.02, 0.03, 0, 0.7, rnode.MOrd)
	c := rnode.NewSymbol("C", 0.7, 0, 0, 0, 0.7, rnode.MOrd)
	c.Style.Color = "blue"
	combined := TryCombineChars([]rnode.Node{a, b, c})
	require.Len(t, combined, 2)
	ab := combined[0].(*rnode.Symbol)
	assert.Equal(t, "AB", ab.Text)
	assert.InDelta(t, 0.7, ab.Height, 1e-9)
	assert.InDelta(t, 0.02, ab.Depth, 1e-9)
	assert.InDelta(t, 0.03, ab.Italic, 1e-9)
	assert.Same(t, c, combined[1].(*rnode.Symbol))
	x := rnode.NewSymbol("x", 0.4, 0, 0, 0, 0.5, rnode.MOrd)
	y := rnode.NewSymbol("y", 0.4, 0, 0, 0, 0.5, rnode.MOrd)
	y.MaxFontSize = 0.7
	assert.Len(t, TryCombineChars([]rnode.Node{x, y}), 2)
}
