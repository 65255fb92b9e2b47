package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/font"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathbuild"
	"github.com/npillmayer/tymath/engine/mathrender"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.render")
	defer teardown()
	//
	assert.Equal(t, []string{"x", "^", "2", "+", "\\alpha", "\\,", "\\\\", "é"},
		tokenize("x^2+\\alpha\\,\\\\é"))
}

func TestReadFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.render")
	defer teardown()
	//
	table := symbols.Default()
	f, err := readFormula(`\sum_{i=1}^n x_i^2 \le \hat y`, table)
	require.NoError(t, err)
	require.Len(t, f, 4)
	sum, ok := f[0].(*parsenode.SupSub)
	require.True(t, ok)
	op, ok := sum.Nucleus.(*parsenode.Op)
	require.True(t, ok)
	assert.Equal(t, "\\sum", op.Name)
	assert.True(t, op.Symbol)
	sub, ok := sum.Sub.(*parsenode.OrdGroup)
	require.True(t, ok)
	assert.Len(t, sub.Body, 3)
	assert.Equal(t, parsenode.TypeMathOrd, sum.Sup.Type())
	x := f[1].(*parsenode.SupSub)
	assert.NotNil(t, x.Sub)
	assert.NotNil(t, x.Sup)
	le, ok := f[2].(*parsenode.Atom)
	require.True(t, ok)
	assert.Equal(t, symbols.Rel, le.Family)
	acc, ok := f[3].(*parsenode.Accent)
	require.True(t, ok)
	assert.Equal(t, "\\hat", acc.Label)
	//
	for _, bad := range []string{`x^`, `\nosuchthing`, `{a+b`, `a}`, `x^1^2`} {
		_, err := readFormula(bad, table)
		if assert.Error(t, err, bad) {
			assert.Equal(t, core.EINVALID, core.Code(err), bad)
		}
	}
}

func TestCompleter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.render")
	defer teardown()
	//
	sc := &symbolCompleter{table: symbols.Default()}
	line := []rune(`tex:x+\alph`)
	candidates, length := sc.Do(line, len(line))
	assert.Equal(t, 5, length)
	require.Len(t, candidates, 1)
	assert.Equal(t, "a", string(candidates[0]))
	candidates, _ = sc.Do([]rune("tex:x"), 5)
	assert.Empty(t, candidates)
}

func testIntp() *Intp {
	mt := font.NewMetricTables()
	for _, r := range "xy" {
		mt.Add("Math-Italic", r, font.CharacterMetrics{Height: 0.43, Width: 0.5})
	}
	mt.Add("Main-Regular", '+', font.CharacterMetrics{Height: 0.58, Depth: 0.08, Width: 0.78})
	env := mathbuild.NewEnvironmentBuilder(nil).WithMetrics(mt).Environment()
	return newIntp(mathrender.NewRenderer(env, nil), 10)
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.render")
	defer teardown()
	//
	intp := testIntp()
	run := func(line string) bool {
		cmd, err := intp.parseCommand(line)
		require.NoError(t, err, line)
		quit, err := intp.execute(cmd)
		require.NoError(t, err, line)
		return quit
	}
	assert.False(t, run("tex:x + y"))
	assert.Len(t, intp.chunks, 2)
	assert.False(t, run(`[{"type":"mathord","text":"x"}]`))
	assert.Len(t, intp.chunks, 1)
	run("style:display size:7 color:blue show html stats")
	assert.Equal(t, 7, intp.opts.Size())
	assert.Equal(t, "blue", intp.opts.Color())
	run("select:span.mord")
	run("xpath://symbol")
	dot := filepath.Join(t.TempDir(), "f.dot")
	run("dot:" + dot)
	_, err := os.Stat(dot)
	assert.NoError(t, err)
	assert.True(t, run("quit"))
	//
	_, err = intp.parseCommand("frobnicate")
	assert.Error(t, err)
	cmd, err := intp.parseCommand("style:huge")
	require.NoError(t, err)
	_, err = intp.execute(cmd)
	assert.Error(t, err)
}
