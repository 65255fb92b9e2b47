package mathbuild

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/rnode"
)

func TestMakeSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	opts := env.Options()
	x, err := env.MakeSymbol("x", "Math-Italic", symbols.Math, opts, rnode.MOrd)
	require.NoError(t, err)
	assert.InDelta(t, 0.43, x.Height, 1e-9)
	assert.InDelta(t, 0.02, x.Italic, 1e-9)
	assert.Equal(t, 1.0, x.MaxFontSize)
	assert.False(t, x.HasClass(rnode.MTight))
	//
	x, err = env.MakeSymbol("x", "Math-Italic", symbols.Text, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x.Italic, "no italic correction in text mode")
	x, err = env.MakeSymbol("x", "Math-Italic", symbols.Math, opts.WithFont("mathit"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, x.Italic, "no italic correction for mathit")
	//
	script := opts.HavingStyle(mathstyle.Script).WithColor("green")
	x, err = env.MakeSymbol("x", "Math-Italic", symbols.Math, script)
	require.NoError(t, err)
	assert.True(t, x.HasClass(rnode.MTight))
	assert.Equal(t, "green", x.Style.Color)
	assert.InDelta(t, 0.7, x.MaxFontSize, 1e-9)
}

func TestMakeSymbolReplacesAndDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	minus, err := env.MakeSymbol("-", "Main-Regular", symbols.Math, nil)
	require.NoError(t, err)
	assert.Equal(t, "−", minus.Text)
	assert.InDelta(t, 0.58, minus.Height, 1e-9)
	//
	missing, err := env.MakeSymbol("\\alpha", "Math-Italic", symbols.Math, nil)
	require.NoError(t, err)
	assert.Equal(t, "α", missing.Text)
	assert.Equal(t, 0.0, missing.Height)
	assert.Equal(t, 0.0, missing.Depth)
	//
	_, err = env.MakeSymbol("x", "NoSuchFont-Regular", symbols.Math, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMissingFontMetrics))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestMakeOrdSelectsFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	opts := env.Options()
	x, err := env.MakeOrd(mathord("x"), opts)
	require.NoError(t, err)
	assert.True(t, x.Classes.Equal(rnode.NewClassSet(rnode.MOrd, rnode.MathDefault)))
	two, err := env.MakeOrd(mathord("2"), opts)
	require.NoError(t, err)
	assert.True(t, two.HasClass(rnode.MathIt))
	assert.InDelta(t, 0.05, two.Italic, 1e-9, "digit from Main-Italic")
	bold, err := env.MakeOrd(mathord("x"), opts.WithFont("boldsymbol"))
	require.NoError(t, err)
	assert.True(t, bold.HasClass(rnode.MathBf), "Math-BoldItalic has no glyph, falls back to Main-Bold")
	assert.InDelta(t, 0.45, bold.Height, 1e-9)
	_, err = env.MakeOrd(bin("+"), opts)
	assert.True(t, errors.Is(err, core.ErrUnexpectedNodeShape))
}

func TestMathSym(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	env := testEnvironment()
	plus, err := env.MathSym("+", symbols.Math, env.Options(), rnode.MBin)
	require.NoError(t, err)
	assert.True(t, plus.Classes.Equal(rnode.NewClassSet(rnode.MBin)))
	assert.InDelta(t, 0.78, plus.Width, 1e-9)
	leq, err := env.MathSym("\\leqslant", symbols.Math, env.Options(), rnode.MRel)
	require.NoError(t, err)
	assert.True(t, leq.HasClass(rnode.AMSRm))
}

func TestGlueAndLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	opts := mathstyle.NewOptions(mathstyle.Text, mathstyle.BaseSize, 0.1)
	glue, err := MakeGlue(thickSpace, opts)
	require.NoError(t, err)
	assert.True(t, glue.HasClass(rnode.MSpace))
	assert.InDelta(t, 0.1, glue.Style.MarginRight.Unwrap(), 1e-9, "glue capped at max size")
	//
	line := MakeLineSpan(rnode.OverlineLine, opts, 0)
	assert.InDelta(t, 0.04, line.Height, 1e-9)
	assert.Equal(t, line.Height, line.Style.BorderBottomWidth.Unwrap())
	assert.Equal(t, 1.0, line.MaxFontSize)
	thick := MakeLineSpan(rnode.OverlineLine, opts, 0.1)
	assert.InDelta(t, 0.1, thick.Height, 1e-9)
	//
	small := opts.HavingSize(3)
	null := MakeNullDelimiter(small, rnode.MOpen)
	assert.True(t, null.HasClass(rnode.NullDelimiter))
	assert.True(t, null.HasClass("reset-size3"))
	assert.True(t, null.HasClass("size6"))
	assert.False(t, MakeNullDelimiter(opts).HasClass(rnode.Sizing))
}

func TestStaticPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.build")
	defer teardown()
	//
	vec, err := StaticPath("vec", nil)
	require.NoError(t, err)
	assert.True(t, vec.HasClass(rnode.Overlay))
	assert.InDelta(t, 0.714, vec.Height, 1e-9)
	assert.Equal(t, "0.714em", vec.Style.Height.String())
	assert.Equal(t, "0.471em", vec.Style.Width.String())
	require.Len(t, vec.Children, 1)
	holder := vec.Children[0].(*rnode.PathHolder)
	assert.InDelta(t, 471, holder.ViewBox.Width, 1e-9)
	assert.InDelta(t, 714, holder.ViewBox.Height, 1e-9)
	assert.Equal(t, "xMinYMin", holder.PreserveAspectRatio)
	assert.NotEmpty(t, holder.Paths[0].Data)
	oval, err := StaticPath("oiiintSize2", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.659, oval.Height, 1e-9)
	_, err = StaticPath("nosuchpath", nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
