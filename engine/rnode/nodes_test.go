package rnode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanSizesFromChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	a := NewSymbol("a", 0.43, 0, 0, 0, 0.53, MOrd)
	a.MaxFontSize = 1
	y := NewSymbol("y", 0.43, 0.19, 0.036, 0, 0.49, MOrd)
	y.MaxFontSize = 0.7
	s := NewSpan(NewClassSet(MOrd), a, y)
	assert.InDelta(t, 0.43, s.Height, 1e-9)
	assert.InDelta(t, 0.19, s.Depth, 1e-9)
	assert.InDelta(t, 1.0, s.MaxFontSize, 1e-9)
	empty := NewSpan(nil)
	assert.Equal(t, 0.0, empty.Height)
	assert.Equal(t, 0.0, empty.Depth)
	big := NewSymbol("X", 1.2, 0.3, 0, 0, 1, MOrd)
	s.Prepend(big)
	assert.InDelta(t, 1.2, s.Height, 1e-9)
	require.Len(t, s.Children, 3)
	assert.Same(t, big, s.Children[0].(*Symbol))
}

func TestClassSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	cs := NewClassSet(MBin, "", MTight, MBin)
	assert.Len(t, cs, 2)
	cs.Replace(MBin, MOrd)
	assert.True(t, cs.Has(MOrd))
	assert.False(t, cs.Has(MBin))
	c, ok := cs.AtomClass()
	require.True(t, ok)
	assert.Equal(t, MOrd, c)
	assert.True(t, cs.Equal(NewClassSet(MTight, MOrd)))
	cp := cs.Copy()
	cp.Remove(MTight)
	assert.True(t, cs.Has(MTight))
	assert.Equal(t, "mord mtight", cs.String())
}

func TestStyleProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	var st Style
	assert.Empty(t, st.Properties())
	st.Height = SomeEm(0.75)
	st.VerticalAlign = SomeEm(-0.25)
	st.Color = "red"
	props := st.Properties()
	require.Len(t, props, 3)
	assert.Equal(t, StyleProperty{"color", "red"}, props[0])
	assert.Equal(t, StyleProperty{"height", "0.75em"}, props[1])
	assert.Equal(t, StyleProperty{"vertical-align", "-0.25em"}, props[2])
	assert.Equal(t, Style{Height: SomeEm(0.75), VerticalAlign: SomeEm(-0.25), Color: "red"}, st)
	assert.Equal(t, 2.0, Em().OrElse(2))
}

func TestWalkAndDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	inner := NewSpan(NewClassSet(MOrd), NewSymbol("x", 0.43, 0, 0, 0, 0.57))
	root := NewSpan(NewClassSet(Base), inner, NewSymbol("+", 0.58, 0.08, 0, 0, 0.78, MBin))
	var texts []string
	Walk(root, func(n Node) bool {
		if sym, ok := n.(*Symbol); ok {
			texts = append(texts, sym.Text)
		}
		return true
	})
	assert.Equal(t, []string{"x", "+"}, texts)
	count := 0
	Walk(root, func(n Node) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
	dump := Dump(root)
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, `symbol "+"`)
}

func TestShiftedChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.rnode")
	defer teardown()
	//
	sup := NewSpan(nil, NewSymbol("2", 0.45, 0, 0, 0, 0.35, MOrd))
	sup.Style.Top = SomeEm(-0.36)
	sub := NewSpan(nil, NewSymbol("i", 0.46, 0, 0, 0, 0.24, MOrd))
	sub.Style.Top = SomeEm(0.25)
	vlist := NewSpan(NewClassSet(VList), sup, sub)
	assert.InDelta(t, 0.81, vlist.Height, 1e-9)
	assert.InDelta(t, 0.25, vlist.Depth, 1e-9)
	raised := NewSpan(nil, sup)
	assert.Equal(t, 0.0, raised.Depth, "depth is never negative")
}
