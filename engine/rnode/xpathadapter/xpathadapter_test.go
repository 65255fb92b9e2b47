package xpathadapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/rnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// x + y, with the sum in a base span
func formula() *rnode.Span {
	x := rnode.NewSymbol("x", 0.43, 0, 0.02, 0, 0.57, rnode.MOrd, rnode.MathDefault)
	plus := rnode.NewSymbol("+", 0.58, 0.08, 0, 0, 0.78, rnode.MBin)
	y := rnode.NewSymbol("y", 0.43, 0.19, 0.04, 0, 0.49, rnode.MOrd, rnode.MathDefault)
	glue1 := rnode.NewSpan(rnode.NewClassSet(rnode.MSpace))
	glue2 := rnode.NewSpan(rnode.NewClassSet(rnode.MSpace))
	return rnode.NewSpan(rnode.NewClassSet(rnode.Base), x, glue1, plus, glue2, y)
}

func TestNavigator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	root := formula()
	nav := NewNavigator(root)
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "span", nav.LocalName())
	assert.Equal(t, "x+y", nav.Value())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "symbol", nav.LocalName())
	assert.False(t, nav.MoveToPrevious())
	require.True(t, nav.MoveToNext())
	require.True(t, nav.MoveToNext())
	assert.Equal(t, "+", nav.Value())
	c := nav.Copy()
	require.True(t, nav.MoveToFirst())
	assert.Equal(t, "x", nav.Value())
	assert.Equal(t, "+", c.Value(), "copies move independently")
	require.True(t, nav.MoveToNextAttribute())
	assert.Equal(t, "class", nav.LocalName())
	assert.Equal(t, "mord mathdefault", nav.Value())
	require.True(t, nav.MoveToParent())
	require.True(t, nav.MoveToParent())
	n, err := CurrentNode(nav)
	require.NoError(t, err)
	assert.Same(t, root, n.(*rnode.Span))
	require.True(t, nav.MoveToParent())
	assert.False(t, nav.MoveToParent())
	require.True(t, nav.MoveTo(c))
	assert.Equal(t, "+", nav.Value())
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	root := formula()
	syms, err := Select(root, "//symbol")
	require.NoError(t, err)
	assert.Len(t, syms, 3)
	bins, err := Select(root, "/span/symbol[contains(@class,'mbin')]")
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, "+", bins[0].(*rnode.Symbol).Text)
	deep, err := Select(root, "//symbol[@depth > 0]")
	require.NoError(t, err)
	assert.Len(t, deep, 2)
	parent, err := Select(root, "//symbol[.='y']/..")
	require.NoError(t, err)
	require.Len(t, parent, 1)
	assert.Same(t, root, parent[0].(*rnode.Span))
	_, err = Select(root, "//symbol[")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	root := formula()
	cnt, err := Evaluate(root, "count(//span[@class='mspace'])")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cnt)
	h, err := Evaluate(root, "string(/span/@height)")
	require.NoError(t, err)
	assert.Equal(t, "0.58", h)
}
