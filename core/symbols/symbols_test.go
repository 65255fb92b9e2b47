package symbols

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.symbols")
	defer teardown()
	//
	table := NewTable()
	table.Define(Math, Main, Rel, "≤", "\\leq", true)
	info, ok := table.Lookup(Math, "\\leq")
	require.True(t, ok)
	assert.Equal(t, Rel, info.Group)
	assert.Equal(t, Main, info.Font)
	info, ok = table.Lookup(Math, "≤")
	require.True(t, ok, "replacement should be accepted as a name")
	assert.Equal(t, "≤", info.Replace)
	_, ok = table.Lookup(Text, "\\leq")
	assert.False(t, ok)
	assert.Equal(t, "≤", table.Replacement(Math, "\\leq"))
	assert.Equal(t, "x", table.Replacement(Math, "x"))
}

func TestDefaultTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.symbols")
	defer teardown()
	//
	table := Default()
	for name, group := range map[string]Group{
		"+": Bin, "=": Rel, "(": Open, ")": Close, ",": Punct,
		"x": MathOrd, "2": TextOrd, "\\alpha": MathOrd, "\\sum": OpToken,
		"\\cdots": Inner, "\\leqslant": Rel, "-": Bin,
	} {
		info, ok := table.Lookup(Math, name)
		if assert.True(t, ok, name) {
			assert.Equal(t, group, info.Group, name)
		}
	}
	info, _ := table.Lookup(Math, "\\leqslant")
	assert.Equal(t, AMS, info.Font)
	info, ok := table.Lookup(Text, "x")
	require.True(t, ok)
	assert.Equal(t, TextOrd, info.Group)
	assert.Equal(t, "−", table.Replacement(Math, "-"))
	assert.Equal(t, "’", table.Replacement(Text, "'"))
}

func TestPrefixSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.symbols")
	defer teardown()
	//
	names := Default().PrefixSearch("\\big")
	assert.Contains(t, names, "\\bigcup")
	assert.Contains(t, names, "\\bigoplus")
	assert.NotContains(t, names, "\\alpha")
}

func TestUnicodeSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.symbols")
	defer teardown()
	//
	syms := UnicodeSymbols()
	assert.Equal(t, "a\u0301", syms['\u00e1'])
	assert.Equal(t, "a\u0308\u0304", syms['\u01df'])
	assert.Equal(t, "o\u030b", syms['\u0151'])
	_, ok := syms['\u00f8'] // no canonical decomposition
	assert.False(t, ok)
	_, ok = syms['\u00e7'] // cedilla is not an accent command
	assert.False(t, ok)
	//
	cmd, ok := AccentCommand('\u0302', Math)
	assert.True(t, ok)
	assert.Equal(t, "\\hat", cmd)
	_, ok = AccentCommand('\u030b', Math)
	assert.False(t, ok)
	cmd, _ = AccentCommand('\u030b', Text)
	assert.Equal(t, "\\H", cmd)
}
