package mathstyle

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/tymath/core/dimen"
)

func TestStyleTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.style")
	defer teardown()
	//
	assert.Equal(t, Script, Display.Sup())
	assert.Equal(t, ScriptCramped, Display.Sub())
	assert.Equal(t, ScriptScript, Script.Sup())
	assert.Equal(t, Text, Display.FracNum())
	assert.Equal(t, TextCramped, Display.FracDen())
	assert.Equal(t, TextCramped, Text.Cramp())
	assert.Equal(t, Text, ScriptScript.Text())
	assert.True(t, Script.IsTight())
	assert.False(t, Text.IsTight())
	assert.True(t, DisplayCramped.IsCramped())
	s, ok := StyleByName("scriptscript")
	require.True(t, ok)
	assert.Equal(t, ScriptScript, s)
}

func TestOptionsAreImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.style")
	defer teardown()
	//
	o := DefaultOptions()
	c := o.WithColor("red")
	assert.Equal(t, "", o.Color())
	assert.Equal(t, "red", c.Color())
	f := c.WithFont("mathbf").WithTextFontFamily("textsf")
	assert.Equal(t, "", f.Font())
	assert.Equal(t, "textsf", f.FontFamily())
	assert.Equal(t, o, o.HavingStyle(Text))
	assert.Equal(t, 2, o.Nested().Nested().Nesting())
	assert.Equal(t, 0, o.Nesting())
}

func TestOptionsSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.style")
	defer teardown()
	//
	o := DefaultOptions()
	assert.Equal(t, 1.0, o.SizeMultiplier())
	s := o.HavingStyle(Script)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 0.7, s.SizeMultiplier())
	ss := o.HavingStyle(ScriptScript)
	assert.Equal(t, 1, ss.Size())
	//
	big := o.HavingSize(9)
	assert.Equal(t, 1.728, big.SizeMultiplier())
	assert.Equal(t, []string{"sizing", "reset-size6", "size9"}, big.SizingClasses(o))
	assert.Nil(t, o.SizingClasses(o))
	assert.Equal(t, []string{"sizing", "reset-size9", "size6"}, big.BaseSizingClasses())
	base := big.HavingBaseStyle(nil)
	assert.Equal(t, BaseSize, base.Size())
}

func TestCalculateSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.style")
	defer teardown()
	//
	o := DefaultOptions()
	em, err := o.CalculateSize(dimen.Mu(18))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, em, 1e-9)
	em, _ = o.CalculateSize(dimen.Mu(4))
	assert.InDelta(t, 4.0/18, em, 1e-9)
	em, _ = o.CalculateSize(dimen.Measurement{Number: 10, Unit: dimen.UnitPT})
	assert.InDelta(t, 1.0, em, 1e-9)
	em, _ = o.CalculateSize(dimen.Measurement{Number: 1, Unit: dimen.UnitEX})
	assert.InDelta(t, 0.431, em, 1e-9)
	//
	capped := NewOptions(Text, BaseSize, 0.1)
	em, _ = capped.CalculateSize(dimen.Mu(18))
	assert.Equal(t, 0.1, em)
	assert.True(t, math.IsInf(o.MaxSize(), 1))
	_, err = o.CalculateSize(dimen.Measurement{Number: 1, Unit: "zz"})
	assert.Error(t, err)
}
