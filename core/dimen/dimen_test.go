package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeasurement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.core")
	defer teardown()
	//
	m, err := ParseMeasurement("3mu")
	require.NoError(t, err)
	assert.Equal(t, Mu(3), m)
	//
	m, err = ParseMeasurement("-1.5 em")
	require.NoError(t, err)
	assert.Equal(t, Em(-1.5), m)
	//
	m, err = ParseMeasurement(".5pt")
	require.NoError(t, err)
	assert.Equal(t, Measurement{0.5, UnitPT}, m)
	//
	_, err = ParseMeasurement("12")
	assert.Error(t, err)
	_, err = ParseMeasurement("12qq")
	assert.Error(t, err)
}

func TestMeasurementDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.core")
	defer teardown()
	//
	d, err := Measurement{10, UnitPT}.Dimen()
	require.NoError(t, err)
	assert.Equal(t, 10*PT, d)
	//
	d, err = Measurement{1, UnitIN}.Dimen()
	require.NoError(t, err)
	assert.InDelta(t, float64(IN), float64(d), 100)
	//
	_, err = Mu(3).Dimen()
	assert.Error(t, err)
	assert.True(t, UnitPX.IsAbsolute())
	assert.False(t, UnitMU.IsAbsolute())
}

func TestFromEm(t *testing.T) {
	assert.Equal(t, 10*PT, FromEm(1, 10))
	assert.Equal(t, Zero, FromEm(0, 12))
}
