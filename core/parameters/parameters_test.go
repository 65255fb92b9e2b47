package parameters

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.core")
	defer teardown()
	//
	regs := NewTypesettingRegisters()
	assert.Equal(t, 128, regs.N(P_MAXNESTING))
	assert.Equal(t, 6, regs.N(P_BASESIZE))
	assert.True(t, math.IsInf(regs.F(P_MAXSIZE), 1))
	assert.False(t, regs.B(P_DISPLAYMODE))
	assert.Equal(t, "P_CACHESIZE", P_CACHESIZE.String())
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.core")
	defer teardown()
	//
	regs := NewTypesettingRegisters()
	regs.Push(P_BASESIZE, 7)
	regs.Begingroup()
	regs.Push(P_BASESIZE, 9)
	assert.Equal(t, 9, regs.N(P_BASESIZE))
	regs.Begingroup()
	assert.Equal(t, 9, regs.N(P_BASESIZE))
	regs.Push(P_DISPLAYMODE, true)
	assert.True(t, regs.B(P_DISPLAYMODE))
	regs.Endgroup()
	assert.False(t, regs.B(P_DISPLAYMODE))
	regs.Endgroup()
	assert.Equal(t, 7, regs.N(P_BASESIZE))
	regs.Endgroup() // no-op on outermost level
	assert.Equal(t, 7, regs.N(P_BASESIZE))
}
